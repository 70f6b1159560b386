// Package config loads the worksheet schema from a file and the environment.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/nodealloc-go/pkg/nodealloc"
	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"
)

// EnvPrefix prefixes environment overrides, e.g. NODEALLOC_SHEET or
// NODEALLOC_DATE__LAYOUT.
const EnvPrefix = "NODEALLOC_"

// Config is the on-disk form of a nodealloc.Schema.
type Config struct {
	Sheet       string         `json:"sheet"`
	Placeholder string         `json:"placeholder"`
	Date        DateConfig     `json:"date"`
	Nodes       []NodeConfig   `json:"nodes"`
	Columns     []ColumnConfig `json:"columns"`
}

// ColumnConfig binds a header text to a column letter.
type ColumnConfig struct {
	// Header is the exact expected header text.
	Header string `json:"header"`
	// Column is the spreadsheet column letter, e.g. "A" or "AB".
	Column string `json:"column"`
}

// DateConfig locates the date of each data row.
type DateConfig struct {
	// Layout is "single" (one date column) or "split" (day, month, year columns).
	Layout string       `json:"layout"`
	Column ColumnConfig `json:"column"`
	Day    ColumnConfig `json:"day"`
	Month  ColumnConfig `json:"month"`
	Year   ColumnConfig `json:"year"`
}

// NodeConfig binds a node name to its assignee column.
type NodeConfig struct {
	Node string `json:"node"`
	// Header defaults to Node.
	Header string `json:"header"`
	Column string `json:"column"`
}

// Load reads configuration from path, if non-empty, then applies environment
// overrides and defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, err
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration equivalent of nodealloc.DefaultSchema.
func Default() Config {
	s := nodealloc.DefaultSchema()
	cfg := Config{
		Sheet:       s.Sheet,
		Placeholder: s.Placeholder,
		Date: DateConfig{
			Layout: string(s.Date.Layout),
			Column: columnConfig(s.Date.Column),
		},
	}
	for _, n := range s.Nodes {
		cfg.Nodes = append(cfg.Nodes, NodeConfig{
			Node:   n.Node,
			Header: n.Column.Header,
			Column: models.ColumnName(n.Column.Index),
		})
	}
	return cfg
}

func columnConfig(b models.ColumnBinding) ColumnConfig {
	return ColumnConfig{Header: b.Header, Column: models.ColumnName(b.Index)}
}

// SetDefaults fills unset fields from the built-in schema.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Sheet == "" {
		c.Sheet = def.Sheet
	}
	if c.Placeholder == "" {
		c.Placeholder = def.Placeholder
	}
	if c.Date.Layout == "" {
		c.Date.Layout = def.Date.Layout
	}
	if c.Date.Layout == string(models.DateSingle) && c.Date.Column == (ColumnConfig{}) {
		c.Date.Column = def.Date.Column
	}
	if len(c.Nodes) == 0 {
		c.Nodes = def.Nodes
	}
	for i := range c.Nodes {
		if c.Nodes[i].Header == "" {
			c.Nodes[i].Header = c.Nodes[i].Node
		}
	}
}

// Validate checks the configuration can be turned into a schema.
func (c Config) Validate() error {
	_, err := c.Schema()
	return err
}

// Schema converts the configuration into a nodealloc.Schema.
func (c Config) Schema() (nodealloc.Schema, error) {
	s := nodealloc.Schema{Sheet: c.Sheet, Placeholder: c.Placeholder}
	if c.Sheet == "" {
		return s, fmt.Errorf("sheet is required")
	}

	var err error
	switch models.Layout(c.Date.Layout) {
	case models.DateSingle:
		s.Date.Layout = models.DateSingle
		if s.Date.Column, err = c.Date.Column.binding("date.column"); err != nil {
			return s, err
		}
	case models.DateSplit:
		s.Date.Layout = models.DateSplit
		if s.Date.Day, err = c.Date.Day.binding("date.day"); err != nil {
			return s, err
		}
		if s.Date.Month, err = c.Date.Month.binding("date.month"); err != nil {
			return s, err
		}
		if s.Date.Year, err = c.Date.Year.binding("date.year"); err != nil {
			return s, err
		}
	default:
		return s, fmt.Errorf("unknown date layout %q (want single or split)", c.Date.Layout)
	}

	for i, col := range c.Columns {
		b, err := col.binding(fmt.Sprintf("columns[%d]", i))
		if err != nil {
			return s, err
		}
		s.Columns = append(s.Columns, b)
	}

	if len(c.Nodes) == 0 {
		return s, fmt.Errorf("at least one node is required")
	}
	for i, n := range c.Nodes {
		if n.Node == "" {
			return s, fmt.Errorf("nodes[%d]: node name is required", i)
		}
		b, err := ColumnConfig{Header: n.Header, Column: n.Column}.binding(fmt.Sprintf("nodes[%d]", i))
		if err != nil {
			return s, err
		}
		s.Nodes = append(s.Nodes, models.NodeBinding{Node: n.Node, Column: b})
	}

	seen := make(map[int]string)
	for _, b := range s.HeaderBindings() {
		if prev, ok := seen[b.Index]; ok {
			return s, fmt.Errorf("column %s bound twice (%q and %q)", models.ColumnName(b.Index), prev, b.Header)
		}
		seen[b.Index] = b.Header
	}
	return s, nil
}

func (c ColumnConfig) binding(field string) (models.ColumnBinding, error) {
	if c.Header == "" {
		return models.ColumnBinding{}, fmt.Errorf("%s: header is required", field)
	}
	if c.Column == "" {
		return models.ColumnBinding{}, fmt.Errorf("%s: column is required", field)
	}
	num, err := excelize.ColumnNameToNumber(strings.ToUpper(c.Column))
	if err != nil {
		return models.ColumnBinding{}, fmt.Errorf("%s: %w", field, err)
	}
	return models.ColumnBinding{Header: c.Header, Index: num - 1}, nil
}
