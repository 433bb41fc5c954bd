// Package extractor turns scanned enrollment forms into roster records
// using the Gemini API. Each document yields one record whose keys are the
// form's field labels.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"google.golang.org/genai"

	"github.com/routeworks/rosterlink/pkg/errors"
	"github.com/routeworks/rosterlink/pkg/logging"
	"github.com/routeworks/rosterlink/pkg/roster"
)

// DefaultModel is the Gemini model used for form extraction.
const DefaultModel = "gemini-2.0-flash"

// extractionPrompt instructs the model to return a flat JSON object of
// form fields. Checkbox-style selections come back with a ":selected:"
// prefix that the address cleaner strips later.
const extractionPrompt = `Extract every filled-in field from this enrollment form.
Return a single flat JSON object mapping each field label to its value as written.
Use empty strings for blank fields. Do not invent fields that are not on the form.`

// Document is one form to extract, as raw bytes plus its MIME type.
type Document struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Client extracts structured records from form documents.
type Client struct {
	genai *genai.Client
	model string
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the Gemini model used for extraction.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// New creates an extraction client. The API key is required; callers load
// it from configuration before constructing the client.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.ErrAPIKeyRequired
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend: genai.BackendGeminiAPI,
		APIKey:  apiKey,
	})
	if err != nil {
		return nil, errors.NewConfigError("extractor", "failed to create Gemini client", err)
	}

	c := &Client{genai: gc, model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Extract runs form extraction on one document and returns the extracted
// fields as a record.
func (c *Client) Extract(ctx context.Context, doc Document) (roster.Record, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(extractionPrompt),
		genai.NewPartFromBytes(doc.Data, doc.MIMEType),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		if errors.IsCanceled(err) {
			return nil, err
		}
		return nil, errors.NewExtractionError(doc.Name, "generation failed", err)
	}

	rec, err := parseExtraction(resp.Text())
	if err != nil {
		return nil, errors.NewExtractionError(doc.Name, "unparseable response", err)
	}
	return rec, nil
}

// ExtractAll extracts every document into one roster, one row per form.
// The column set is the union of all extracted field labels, in first-seen
// order. A document that fails to extract aborts the run; partial rosters
// are worse than no roster here because missing students read as
// withdrawals downstream.
func (c *Client) ExtractAll(ctx context.Context, docs []Document) (*roster.Roster, error) {
	log := logging.FromContext(ctx)

	t := roster.New()
	for _, doc := range docs {
		rec, err := c.Extract(ctx, doc)
		if err != nil {
			return nil, err
		}
		for _, col := range sortedKeys(rec) {
			t.AddColumn(col)
		}
		t.Append(rec)
		log.Debug().Str("document", doc.Name).Int("fields", len(rec)).Msg("extracted form")
	}

	return t, nil
}

// parseExtraction decodes the model's JSON object into a record,
// stringifying non-string values.
func parseExtraction(text string) (roster.Record, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty response")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}

	rec := make(roster.Record, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			rec[k] = val
		case nil:
			rec[k] = ""
		case float64:
			rec[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			rec[k] = strconv.FormatBool(val)
		default:
			rec[k] = fmt.Sprintf("%v", val)
		}
	}
	return rec, nil
}

func sortedKeys(rec roster.Record) []string {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
