// Package main provides the AWS Lambda entrypoint for the flipbook
// converter. The function accepts a base64-encoded PDF in the request
// body and returns the flipbook bundle as a base64-encoded ZIP archive.
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/municipress/flipbook/internal/config"
	"github.com/municipress/flipbook/internal/pack"
	"github.com/municipress/flipbook/pkg/flipbook"
)

var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
	"Access-Control-Allow-Methods": "POST, OPTIONS",
}

type handler struct {
	client *flipbook.Client
}

func (h *handler) handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if event.HTTPMethod == "OPTIONS" {
		return events.APIGatewayProxyResponse{StatusCode: 204, Headers: corsHeaders}, nil
	}

	var pdfBytes []byte
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return errorResponse(400, fmt.Errorf("invalid base64 body: %w", err)), nil
		}
		pdfBytes = decoded
	} else {
		pdfBytes = []byte(event.Body)
	}

	title := event.QueryStringParameters["title"]
	if title == "" {
		title = "Zpravodaj"
	}

	cfg := h.client.Config()
	req := flipbook.ConversionRequest{
		PDF:         pdfBytes,
		Title:       title,
		Account:     event.QueryStringParameters["account"],
		OCR:         event.QueryStringParameters["ocr"] == "true" || cfg.OCR.Enabled,
		OCRLanguage: event.QueryStringParameters["lang"],
	}

	archive, res, err := h.client.ConvertToZip(ctx, req)
	if err != nil {
		return errorResponse(500, err), nil
	}

	h.client.Logger().Info().
		Str("title", title).
		Int("pages", res.PageCount).
		Int("archive_bytes", len(archive)).
		Msg("conversion complete")

	headers := map[string]string{
		"Content-Type":        "application/zip",
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", pack.ArchiveFilename(title)),
	}
	for k, v := range corsHeaders {
		headers[k] = v
	}

	return events.APIGatewayProxyResponse{
		StatusCode:      200,
		Headers:         headers,
		Body:            base64.StdEncoding.EncodeToString(archive),
		IsBase64Encoded: true,
	}, nil
}

func errorResponse(status int, err error) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	headers := map[string]string{"Content-Type": "application/json"}
	for k, v := range corsHeaders {
		headers[k] = v
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       string(body),
	}
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		cfg = config.DefaultConfig()
	}

	client, err := flipbook.NewClientWithConfig(cfg)
	if err != nil {
		panic(err)
	}

	h := &handler{client: client}
	lambda.Start(h.handle)
}
