package option

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/viant/convx/value"
	"github.com/viant/tagly/format/text"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config represents serializable options
type Config struct {
	Zone       string                 `yaml:"zone,omitempty"`
	Locale     string                 `yaml:"locale,omitempty"`
	Charset    string                 `yaml:"charset,omitempty"`
	TrueChar   string                 `yaml:"trueChar,omitempty"`
	FalseChar  string                 `yaml:"falseChar,omitempty"`
	DateFormat string                 `yaml:"dateFormat,omitempty"`
	CaseFormat string                 `yaml:"caseFormat,omitempty"`
	Custom     map[string]interface{} `yaml:"custom,omitempty"`
}

// Options converts config into options
func (c *Config) Options(opts ...Option) (*Options, error) {
	var result []Option
	if c.Zone != "" {
		zone, err := time.LoadLocation(c.Zone)
		if err != nil {
			return nil, fmt.Errorf("invalid zone %q: %w", c.Zone, err)
		}
		result = append(result, WithZone(zone))
	}
	if c.Locale != "" {
		locale, err := language.Parse(c.Locale)
		if err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
		}
		result = append(result, WithLocale(locale))
	}
	if c.Charset != "" {
		result = append(result, WithCharset(c.Charset))
	}
	if c.TrueChar != "" {
		ch, err := singleChar("trueChar", c.TrueChar)
		if err != nil {
			return nil, err
		}
		result = append(result, WithTrueChar(ch))
	}
	if c.FalseChar != "" {
		ch, err := singleChar("falseChar", c.FalseChar)
		if err != nil {
			return nil, err
		}
		result = append(result, WithFalseChar(ch))
	}
	if c.DateFormat != "" {
		result = append(result, WithDateFormat(c.DateFormat))
	}
	if c.CaseFormat != "" {
		caseFormat := text.NewCaseFormat(c.CaseFormat)
		if !caseFormat.IsDefined() {
			return nil, fmt.Errorf("invalid caseFormat %q", c.CaseFormat)
		}
		result = append(result, WithCaseFormat(caseFormat))
	}
	for k, v := range c.Custom {
		result = append(result, WithCustom(k, v))
	}
	ret := New(result...)
	if _, err := ret.Encoding(); err != nil {
		return nil, err
	}
	if len(opts) > 0 {
		ret = ret.With(opts...)
	}
	return ret, nil
}

// Load loads options from YAML document
func Load(data []byte, opts ...Option) (*Options, error) {
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to decode options: %w", err)
	}
	return config.Options(opts...)
}

func singleChar(name, literal string) (value.Char, error) {
	if utf8.RuneCountInString(literal) != 1 {
		return 0, fmt.Errorf("invalid %v %q: expected a single character", name, literal)
	}
	r, _ := utf8.DecodeRuneInString(literal)
	return value.Char(r), nil
}
