package classifier

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"travel-assistant/internal/model"
)

var (
	fencedJSON = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	toolName   = regexp.MustCompile(`\b(weather|highway|route|parking|nearby|schedule|general)(?:_tool)?\b`)

	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

type classifyReply struct {
	Tools []string `json:"tools"`
}

// ParseReply extracts the capability list from a model reply. Candidate objects
// are fenced json blocks, then balanced {...} spans in order of appearance; the
// first that passes the reply schema wins. Bare tool names are scanned only
// when the reply holds no object at all.
func ParseReply(text string) ([]model.CapabilityID, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrUnparseableReply
	}

	candidates := candidateObjects(text)
	if len(candidates) > 0 {
		var firstErr error
		for _, obj := range candidates {
			names, err := decodeReply(obj)
			if err == nil {
				return toCapabilities(names), nil
			}
			if firstErr == nil {
				firstErr = err
			}
		}
		return nil, firstErr
	}

	matches := toolName.FindAllString(text, -1)
	if len(matches) == 0 {
		return nil, ErrUnparseableReply
	}
	return toCapabilities(matches), nil
}

func candidateObjects(text string) []string {
	var out []string
	for _, m := range fencedJSON.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return append(out, balancedObjects(text)...)
}

// balancedObjects returns every {...} span with balanced braces, by start
// position, ignoring braces inside JSON strings. Spans may nest.
func balancedObjects(text string) []string {
	var out []string
	for start := 0; start < len(text); start++ {
		if text[start] != '{' {
			continue
		}
		if end, ok := matchBrace(text, start); ok {
			out = append(out, text[start:end+1])
		}
	}
	return out
}

// matchBrace returns the index of the brace closing the one at start.
func matchBrace(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func decodeReply(obj string) ([]string, error) {
	s, err := replySchemaValidator()
	if err != nil {
		return nil, err
	}

	result, err := s.Validate(gojsonschema.NewStringLoader(obj))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableReply, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnparseableReply, errs)
	}

	var reply classifyReply
	if err := json.Unmarshal([]byte(obj), &reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparseableReply, err)
	}
	return reply.Tools, nil
}

func replySchemaValidator() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(replySchema))
	})
	return schema, schemaErr
}

// toCapabilities keeps recognized names, in first-seen order, without duplicates.
func toCapabilities(names []string) []model.CapabilityID {
	seen := make(map[model.CapabilityID]bool, len(names))
	out := make([]model.CapabilityID, 0, len(names))
	for _, name := range names {
		id, ok := model.ParseCapability(name)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
