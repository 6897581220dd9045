package transforms

import (
	"encoding/base64"
	"strings"
	"unicode"

	"github.com/textmorph/textmorph/pkg/augment"
	"github.com/textmorph/textmorph/pkg/augment/charmaps"
	"github.com/textmorph/textmorph/pkg/errors"
)

// Encoders accepted by [NewEncodeText].
const (
	EncoderBase64    = "base64"
	EncoderLeetspeak = "leetspeak"
)

// EncodeText re-encodes text with a reversible or lossy encoder. At
// granularity "all" the whole text is encoded as one unit; at "word" the
// leading tokens are encoded, with edge punctuation stripped before
// encoding and reattached after. Word selection is deterministic so the
// same configuration always encodes the same tokens.
type EncodeText struct {
	encoder string
	cfg     augment.BaseConfig
}

// NewEncodeText creates an encoding transform. Granularity defaults to
// "all"; "char" is not a valid unit for encoding.
func NewEncodeText(encoder string, cfg augment.BaseConfig) (*EncodeText, error) {
	switch encoder {
	case EncoderBase64, EncoderLeetspeak:
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig,
			"invalid encoder: %q (must be 'base64' or 'leetspeak')", encoder)
	}

	cfg = cfg.WithDefaults(augment.GranularityAll)
	if cfg.Granularity == augment.GranularityChar {
		return nil, errors.New(errors.ErrCodeInvalidGranularity,
			"encode_text granularity must be 'all' or 'word'")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &EncodeText{encoder: encoder, cfg: cfg}, nil
}

var _ augment.Transformer = (*EncodeText)(nil)

// Name implements [augment.Transformer].
func (*EncodeText) Name() string { return FamilyEncodeText }

// DescribeConfig implements [augment.Describer].
func (t *EncodeText) DescribeConfig() map[string]any {
	cfg := map[string]any(t.cfg.Fields())
	cfg[KeyEncoder] = t.encoder
	return cfg
}

// Apply implements [augment.Transformer].
func (t *EncodeText) Apply(texts []string) ([]string, []augment.Record, error) {
	return augment.PerText(FamilyEncodeText, texts, func(src string) (string, augment.Record, error) {
		var dst string
		var units, changed int

		if t.cfg.Granularity == augment.GranularityAll {
			dst = t.encode(src)
			if src != "" {
				units = 1
			}
			if dst != src {
				changed = 1
			}
		} else {
			dst, units, changed = t.encodeWords(src)
		}

		fields := outcomeFields(t.cfg, units, changed)
		fields[KeyEncoder] = t.encoder
		return dst, fields, nil
	})
}

// encodeWords encodes the first AugCount tokens of src.
func (t *EncodeText) encodeWords(src string) (string, int, int) {
	words := strings.Fields(src)
	if len(words) == 0 {
		return src, 0, 0
	}

	count := t.cfg.AugCount(len(words))
	changed := 0
	for i := 0; i < count; i++ {
		lead, core, trail := splitEdgePunct(words[i])
		next := lead + t.encode(core) + trail
		if next != words[i] {
			words[i] = next
			changed++
		}
	}

	return strings.Join(words, " "), len(words), changed
}

func (t *EncodeText) encode(s string) string {
	if s == "" {
		return s
	}
	switch t.encoder {
	case EncoderBase64:
		return base64.StdEncoding.EncodeToString([]byte(s))
	default: // EncoderLeetspeak
		var b strings.Builder
		b.Grow(len(s))
		for _, r := range s {
			low := unicode.ToLower(r)
			if digits, ok := charmaps.Leet[low]; ok {
				b.WriteString(digits)
			} else {
				b.WriteRune(low)
			}
		}
		return b.String()
	}
}
