package extract

import (
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Payload is the parsed JSON object of a single entry.
type Payload map[string]any

// Result maps entry keys to their parsed payloads.
type Result map[string]Payload

// Stats summarizes one extraction run.
type Stats struct {
	Entries    int `json:"entries"`
	Dropped    int `json:"dropped"`
	Duplicates int `json:"duplicates"`
}

type state int

const (
	stateIdle state = iota
	stateAwaitingBody
	stateInBody
)

func (s state) String() string {
	switch s {
	case stateAwaitingBody:
		return "awaiting_body"
	case stateInBody:
		return "in_body"
	default:
		return "idle"
	}
}

const utf8BOM = "\uFEFF"

// Extractor rebuilds entries from catalog text files.
type Extractor struct {
	logger *zap.Logger
}

// New creates an Extractor. A nil logger disables diagnostics.
func New(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// Extract scans content line by line and returns every entry whose body parses.
// Malformed entries are logged and dropped; they never abort the scan.
func (e *Extractor) Extract(content string) (Result, Stats) {
	s := &scan{
		logger: e.logger,
		out:    make(Result),
	}

	content = strings.TrimPrefix(content, utf8BOM)
	for _, line := range strings.Split(content, "\n") {
		s.feed(strings.TrimSpace(line))
	}
	s.flush()

	s.stats.Entries = len(s.out)
	return s.out, s.stats
}

// Extract runs a silent Extractor over content.
func Extract(content string) Result {
	out, _ := New(nil).Extract(content)
	return out
}

// scan carries the state machine for one run. key and buf are only
// meaningful outside stateIdle.
type scan struct {
	logger *zap.Logger
	out    Result
	stats  Stats

	state state
	key   string
	buf   strings.Builder
}

func (s *scan) feed(line string) {
	if line == "" {
		return
	}

	if key, rest, ok := declaration(line); ok {
		// Inside a body only an object-valued declaration starts a new entry;
		// `"field": value,` lines belong to the open body.
		if s.state != stateInBody || strings.HasPrefix(rest, "{") {
			s.flush()
			s.begin(key, rest)
			return
		}
	}

	switch s.state {
	case stateAwaitingBody:
		if !strings.HasPrefix(line, "{") {
			return
		}
		s.state = stateInBody
		s.append(line)
	case stateInBody:
		s.append(line)
	}
}

func (s *scan) begin(key, rest string) {
	s.key = key
	s.buf.Reset()

	start := strings.Index(rest, "{")
	if start < 0 {
		s.state = stateAwaitingBody
		return
	}
	s.state = stateInBody
	s.append(rest[start:])
}

// append adds a body line and closes the entry when the line ends like an
// object close. Brace depth is not tracked; catalog files are generated
// for this line-suffix rule.
func (s *scan) append(line string) {
	s.buf.WriteString(line)
	if strings.HasSuffix(line, "}") || strings.HasSuffix(line, "},") {
		s.flush()
	}
}

// flush commits the open entry, if any, and returns to idle.
func (s *scan) flush() {
	defer s.reset()

	switch {
	case s.state == stateIdle:
		return
	case s.buf.Len() == 0:
		s.stats.Dropped++
		s.logger.Debug("Dropping entry without body", zap.String("key", s.key))
		return
	}

	body := strings.TrimSuffix(s.buf.String(), ",")

	var payload Payload
	if err := json.Unmarshal([]byte(body), &payload); err != nil || payload == nil {
		s.stats.Dropped++
		s.logger.Warn("Dropping malformed entry",
			zap.String("key", s.key),
			zap.Stringer("state", s.state),
			zap.Error(err),
		)
		return
	}

	if _, exists := s.out[s.key]; exists {
		s.stats.Duplicates++
		s.logger.Warn("Duplicate entry key, keeping last", zap.String("key", s.key))
	}
	s.out[s.key] = payload
}

func (s *scan) reset() {
	s.state = stateIdle
	s.key = ""
	s.buf.Reset()
}

// declaration splits a `"key": ...` line into the key and the trimmed text
// after the `":` marker.
func declaration(line string) (key, rest string, ok bool) {
	if !strings.HasPrefix(line, `"`) {
		return "", "", false
	}
	end := strings.Index(line[1:], `":`)
	if end < 0 {
		return "", "", false
	}
	end++
	return line[1:end], strings.TrimSpace(line[end+2:]), true
}
