package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf16"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/npillmayer/translit/collab"
)

const maxMessageSize = 8 << 20 // images and documents arrive inline

// Message types
const (
	msgInput  = "input"
	msgSpeak  = "speak"
	msgImport = "import"
	msgOCR    = "ocr"
	msgPing   = "ping"

	msgResult = "result"
	msgAudio  = "audio"
	msgText   = "text"
	msgPong   = "pong"
	msgError  = "error"
)

// Error codes
const (
	codeBadRequest  = "bad_request"
	codeCursor      = "cursor_out_of_range"
	codeUnavailable = "unavailable"
	codeFailed      = "failed"
	codeUnsupported = "unsupported_format"
)

// WSMessage is a message from the browser.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// WSResponse is a message to the browser.
type WSResponse struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// inputPayload carries the text box state right after an insertion.
// Cursor counts UTF-16 code units, as selectionStart does in browsers.
type inputPayload struct {
	Text      string `json:"text"`
	Cursor    int    `json:"cursor"`
	InputType string `json:"inputType,omitempty"`
}

type resultPayload struct {
	Text    string `json:"text"`
	Cursor  int    `json:"cursor"`
	Changed bool   `json:"changed"`
	Edit    string `json:"edit,omitempty"`
}

type speakPayload struct {
	Text   string `json:"text"`
	Gender string `json:"gender,omitempty"`
	Region string `json:"region,omitempty"`
}

type audioPayload struct {
	Data string `json:"data"` // base64
}

type filePayload struct {
	Data      []byte `json:"data"` // base64 on the wire
	Extension string `json:"extension,omitempty"`
}

type errorPayload struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		tracer().Errorf("websocket upgrade failed: %v", err)
		return
	}
	id := uuid.NewString()
	tracer().Infof("[%s] connected from %s", id, r.RemoteAddr)
	defer func() {
		conn.Close()
		tracer().Infof("[%s] disconnected", id)
	}()
	conn.SetReadLimit(maxMessageSize)
	// requests of one connection are handled in order, one at a time
	for {
		var msg WSMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				tracer().Errorf("[%s] read: %v", id, err)
			}
			return
		}
		resp := s.handleMessage(r.Context(), msg)
		if err := conn.WriteJSON(resp); err != nil {
			tracer().Errorf("[%s] write: %v", id, err)
			return
		}
	}
}

func (s *Server) handleMessage(ctx context.Context, msg WSMessage) WSResponse {
	switch msg.Type {
	case msgInput:
		var p inputPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return errorResponse(codeBadRequest, err.Error(), false)
		}
		return s.handleInput(p)
	case msgSpeak:
		var p speakPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return errorResponse(codeBadRequest, err.Error(), false)
		}
		return s.handleSpeak(ctx, p)
	case msgImport, msgOCR:
		var p filePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return errorResponse(codeBadRequest, err.Error(), false)
		}
		if msg.Type == msgOCR {
			return s.handleOCR(ctx, p)
		}
		return s.handleImport(ctx, p)
	case msgPing:
		return WSResponse{Type: msgPong}
	}
	return errorResponse(codeBadRequest, "unknown message type "+msg.Type, false)
}

// handleInput runs the engine once for an insertion. Other edits
// (deletions, formatting) are answered with the unchanged state.
func (s *Server) handleInput(p inputPayload) WSResponse {
	text := []rune(p.Text)
	cursor, ok := runeOffset(text, p.Cursor)
	if !ok {
		return errorResponse(codeCursor, "cursor does not point into text", false)
	}
	unchanged := WSResponse{Type: msgResult, Payload: resultPayload{Text: p.Text, Cursor: p.Cursor}}
	if !isInsertion(p.InputType) {
		return unchanged
	}
	edit, matched := s.Engine().Match(text, cursor)
	if !matched {
		return unchanged
	}
	text, cursor = edit.ApplyTo(text)
	return WSResponse{Type: msgResult, Payload: resultPayload{
		Text:    string(text),
		Cursor:  utf16Len(text[:cursor]),
		Changed: true,
		Edit:    edit.Kind.String(),
	}}
}

func isInsertion(inputType string) bool {
	return inputType == "" || strings.HasPrefix(inputType, "insert")
}

func (s *Server) handleSpeak(ctx context.Context, p speakPayload) WSResponse {
	if s.opts.Synthesizer == nil {
		return errorResponse(codeUnavailable, "speech synthesis is not configured", false)
	}
	if strings.TrimSpace(p.Text) == "" {
		return errorResponse(codeBadRequest, "text is required", false)
	}
	req := collab.SpeechRequest{Text: p.Text, Gender: p.Gender, Region: p.Region}
	if req.Gender == "" {
		req.Gender = s.opts.DefaultGender
	}
	if req.Region == "" {
		req.Region = s.opts.DefaultRegion
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.CollabTimeout)
	defer cancel()
	audio, err := s.opts.Synthesizer.Synthesize(ctx, req.WithDefaults())
	if err != nil {
		return collabError(err)
	}
	return WSResponse{Type: msgAudio, Payload: audioPayload{Data: audio}}
}

func (s *Server) handleImport(ctx context.Context, p filePayload) WSResponse {
	if s.opts.DocumentParser == nil {
		return errorResponse(codeUnavailable, "document import is not configured", false)
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.CollabTimeout)
	defer cancel()
	text, err := s.opts.DocumentParser.ExtractText(ctx, p.Data, strings.ToLower(p.Extension))
	if err != nil {
		return collabError(err)
	}
	return WSResponse{Type: msgText, Payload: textPayload{Text: strings.TrimSpace(text)}}
}

func (s *Server) handleOCR(ctx context.Context, p filePayload) WSResponse {
	if s.opts.ImageExtractor == nil {
		return errorResponse(codeUnavailable, "text recognition is not configured", false)
	}
	ctx, cancel := context.WithTimeout(ctx, s.opts.CollabTimeout)
	defer cancel()
	text, err := s.opts.ImageExtractor.ExtractText(ctx, p.Data)
	if err != nil {
		return collabError(err)
	}
	return WSResponse{Type: msgText, Payload: textPayload{Text: strings.TrimSpace(text)}}
}

func collabError(err error) WSResponse {
	tracer().Errorf("collaborator failed: %v", err)
	var unsupported *collab.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		return errorResponse(codeUnsupported, err.Error(), false)
	}
	return errorResponse(codeFailed, err.Error(), collab.Retryable(err))
}

func errorResponse(code, message string, retryable bool) WSResponse {
	return WSResponse{Type: msgError, Payload: errorPayload{Code: code, Message: message, Retryable: retryable}}
}

// runeOffset converts a UTF-16 offset into a rune offset. It fails for
// offsets beyond the text or inside a surrogate pair.
func runeOffset(text []rune, units int) (int, bool) {
	if units < 0 {
		return 0, false
	}
	n := 0
	for i, r := range text {
		if n == units {
			return i, true
		}
		n += utf16.RuneLen(r)
		if n > units {
			return 0, false
		}
	}
	return len(text), n == units
}

func utf16Len(text []rune) int {
	n := 0
	for _, r := range text {
		n += utf16.RuneLen(r)
	}
	return n
}
