package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/westeen/Medala-v3/utils"

	"google.golang.org/genai"
)

// Attachment is a user-uploaded artifact (photo, document, voice note)
// forwarded to Gemini alongside the instruction prompt.
type Attachment struct {
	Filename string
	Data     []byte
}

// Extractor is the single call pattern every AI-backed feature goes through.
// It never applies fallbacks; callers decide what a failure means.
type Extractor interface {
	Extract(ctx context.Context, prompt string, attachments []Attachment, schema *genai.Schema, out any) error
}

type GeminiService struct {
	client *genai.Client
	model  string
}

func NewGeminiService(ctx context.Context, apiKey, model string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

// Extract uploads every attachment as a standalone file reference, asks the
// model for strict JSON matching schema, and unmarshals the response into
// out. Network errors, malformed JSON and schema mismatches all come back as
// plain errors.
func (s *GeminiService) Extract(ctx context.Context, prompt string, attachments []Attachment, schema *genai.Schema, out any) error {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}

	for _, att := range attachments {
		file, err := s.uploadAttachment(ctx, att)
		if err != nil {
			return err
		}
		parts = append(parts, genai.NewPartFromURI(file.URI, file.MIMEType))
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
	if err != nil {
		return fmt.Errorf("generate content: %w", err)
	}

	if err := json.Unmarshal([]byte(resp.Text()), out); err != nil {
		return fmt.Errorf("parse model response: %w", err)
	}
	return nil
}

// uploadAttachment materializes the attachment as a temp file for the SDK's
// path-based upload. The temp file is removed before returning, whether or
// not the upload succeeded.
func (s *GeminiService) uploadAttachment(ctx context.Context, att Attachment) (*genai.File, error) {
	path, cleanup, err := utils.MaterializeTemp(att.Filename, att.Data)
	if err != nil {
		return nil, fmt.Errorf("materialize attachment: %w", err)
	}
	defer cleanup()

	file, err := s.client.Files.UploadFromPath(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("upload attachment: %w", err)
	}
	return file, nil
}
