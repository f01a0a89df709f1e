package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aws/aws-lambda-go/lambda"
	_ "github.com/tasmovie/parser/internal/formats" // register formats
	"github.com/tasmovie/parser/internal/parser"
	"github.com/tasmovie/parser/internal/registry"
	"github.com/tasmovie/parser/internal/result"
)

// LambdaEvent is the invocation payload (e.g. from API Gateway).
type LambdaEvent struct {
	Filename string `json:"filename"` // used for format detection
	Body     string `json:"body"`     // movie file content (raw or base64 if isBase64)
	IsBase64 bool   `json:"isBase64,omitempty"`
}

// LambdaResponse is returned to the client (API Gateway).
type LambdaResponse struct {
	StatusCode int            `json:"statusCode"`
	Error      string         `json:"error,omitempty"`
	Suggestion string         `json:"suggestion,omitempty"`
	Result     *result.Result `json:"result,omitempty"`
}

// APIGatewayResponse is the shape expected by API Gateway proxy integration (body = JSON string).
type APIGatewayResponse struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers,omitempty"`
	Body       string            `json:"body"`
}

var movieParser = parser.New(parser.DefaultOptions())

func handler(ctx context.Context, event LambdaEvent) (APIGatewayResponse, error) {
	out := LambdaResponse{StatusCode: 200}

	if event.Filename == "" {
		out.StatusCode = 400
		out.Error = "filename is required"
		return wrap(out), nil
	}

	data := []byte(event.Body)
	if event.IsBase64 {
		dec, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			out.StatusCode = 400
			out.Error = "invalid base64 body: " + err.Error()
			return wrap(out), nil
		}
		data = dec
	}

	res, err := movieParser.Parse(event.Filename, data)
	if err != nil {
		out.StatusCode = 400
		out.Error = err.Error()
		if errors.Is(err, registry.ErrUnsupportedFormat) {
			out.Suggestion = "Use one of: " + strings.Join(movieParser.Extensions(), ", ")
		}
		return wrap(out), nil
	}

	out.Result = res
	if !res.Success {
		out.StatusCode = 422
	}
	return wrap(out), nil
}

func wrap(out LambdaResponse) APIGatewayResponse {
	bodyBytes, _ := json.Marshal(out)
	return APIGatewayResponse{
		StatusCode: out.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(bodyBytes),
	}
}

func main() {
	lambda.Start(handler)
}
