package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/draftstack/mcp-draftstack/internal/client"
	"github.com/draftstack/mcp-draftstack/internal/config"
	"github.com/draftstack/mcp-draftstack/internal/configload"
	"github.com/draftstack/mcp-draftstack/internal/logger"
	"github.com/draftstack/mcp-draftstack/internal/mcp"
)

func main() {
	// Read from stdin, write to stdout.
	// Only protocol JSON may go to stdout; all logs go to stderr.
	cfg := config.LoadOrDefault(configload.GetConfigPath("config.yml"))

	log := logger.Must(cfg.Logging)
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", logger.Error(err))
	}

	cms := client.New(
		cfg.CMS.BaseURL,
		cfg.CMS.APIToken,
		cfg.CMS.AdminEmail,
		cfg.CMS.AdminPassword,
		client.WithTimeout(time.Duration(cfg.CMS.HTTPTimeoutSeconds)*time.Second),
		client.WithLogger(log),
	)

	server := mcp.NewServer(cms, log)
	log.Info("draftstack mcp server started", logger.String("cms_url", cfg.CMS.BaseURL))

	serve(context.Background(), server, os.Stdin, os.Stdout)
}

// serve runs the protocol loop until the input stream ends.
func serve(ctx context.Context, server *mcp.Server, in io.Reader, out io.Writer) {
	// MCP clients expect compact JSON, so no SetIndent on the encoder.
	var stream io.Reader = bufio.NewReader(in)
	decoder := json.NewDecoder(stream)
	encoder := json.NewEncoder(out)

	for {
		var request mcp.Request
		if err := decoder.Decode(&request); err != nil {
			if err == io.EOF {
				break
			}
			// The ID is unrecoverable from a malformed request; JSON-RPC
			// requires a string or number, not null.
			sendError(encoder, 0, mcp.ParseError, "Failed to parse request")
			// Decode leaves the malformed bytes unread, so decoding again
			// without skipping them would repeat the same error. Discard
			// through the end of the line before continuing.
			stream, decoder = resync(decoder, stream)
			if decoder == nil {
				break
			}
			continue
		}

		response := server.HandleRequest(ctx, &request)
		if response == nil {
			// Notification: no response expected.
			continue
		}
		// Preserve the original request ID exactly as sent.
		if response.ID == nil && request.ID != nil {
			response.ID = request.ID
		}
		if request.ID == nil {
			continue
		}
		if encodeErr := encoder.Encode(response); encodeErr != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode response: %v\n", encodeErr)
		}
	}
}

// resync skips to the start of the next line after a parse failure. The
// returned decoder picks up there; a nil decoder means the stream ended
// inside the malformed document.
func resync(decoder *json.Decoder, stream io.Reader) (io.Reader, *json.Decoder) {
	buffered := bufio.NewReader(io.MultiReader(decoder.Buffered(), stream))
	if _, err := buffered.ReadString('\n'); err != nil {
		return nil, nil
	}
	return buffered, json.NewDecoder(buffered)
}

func sendError(encoder *json.Encoder, id any, code int, message string) {
	errorResponse := mcp.ErrorResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: mcp.ErrorObject{
			Code:    code,
			Message: message,
		},
	}
	if encodeErr := encoder.Encode(errorResponse); encodeErr != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode error response: %v\n", encodeErr)
	}
}
