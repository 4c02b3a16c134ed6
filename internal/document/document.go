// Package document decodes partial customization override documents and
// layers them over a base customization.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/LerianStudio/lib-dashboard-go/constant"
	"github.com/LerianStudio/lib-dashboard-go/model"
)

// Supported document formats
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Document is a partial customization. Nil fields leave the base untouched.
type Document struct {
	Title          *string           `json:"title,omitempty" toml:"title,omitempty"`
	CompanyName    *string           `json:"companyName,omitempty" toml:"companyName,omitempty"`
	Logo           *string           `json:"logo,omitempty" toml:"logo,omitempty"`
	PrimaryColor   *string           `json:"primaryColor,omitempty" toml:"primaryColor,omitempty"`
	SecondaryColor *string           `json:"secondaryColor,omitempty" toml:"secondaryColor,omitempty"`
	UserName       *string           `json:"userName,omitempty" toml:"userName,omitempty"`
	Dashboard      *SectionDocument  `json:"dashboard,omitempty" toml:"dashboard,omitempty"`
	Analytics      *SectionDocument  `json:"analytics,omitempty" toml:"analytics,omitempty"`
	Clients        []model.Client    `json:"clients,omitempty" toml:"clients,omitempty"`
	Features       *FeaturesDocument `json:"features,omitempty" toml:"features,omitempty"`
	Data           model.CustomData  `json:"data,omitempty" toml:"data,omitempty"`
}

// SectionDocument overrides a section. Tabs replace the whole list, charts merge by name.
type SectionDocument struct {
	Tabs   []model.TabConfig            `json:"tabs,omitempty" toml:"tabs,omitempty"`
	Charts map[string]model.ChartConfig `json:"charts,omitempty" toml:"charts,omitempty"`
}

// FeaturesDocument overrides individual feature flags.
type FeaturesDocument struct {
	DataImport      *bool `json:"dataImport,omitempty" toml:"dataImport,omitempty"`
	Analytics       *bool `json:"analytics,omitempty" toml:"analytics,omitempty"`
	Reporting       *bool `json:"reporting,omitempty" toml:"reporting,omitempty"`
	EmailAutomation *bool `json:"emailAutomation,omitempty" toml:"emailAutomation,omitempty"`
}

// FormatFromPath maps a file name or object key to a document format.
func FormatFromPath(p string) (string, error) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", constant.ErrUnsupportedFormat, p)
	}
}

// Decode parses a document in the given format.
func Decode(data []byte, format string) (Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()

		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("%w: parse json document: %w", constant.ErrInvalidCustomization, err)
		}

		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return Document{}, fmt.Errorf("%w: parse json document: unexpected data after document", constant.ErrInvalidCustomization)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return Document{}, fmt.Errorf("%w: parse toml document: %w", constant.ErrInvalidCustomization, err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Document{}, fmt.Errorf("%w: parse toml document: unknown key %s", constant.ErrInvalidCustomization, undecoded[0])
		}
	default:
		return Document{}, fmt.Errorf("%w: %s", constant.ErrUnsupportedFormat, format)
	}

	return doc, nil
}

// Apply layers doc over base and returns fresh copies; base is never mutated.
func Apply(base model.AppConfig, data model.CustomData, doc Document) (model.AppConfig, model.CustomData) {
	cfg := base.Clone()
	out := data.Clone()

	setString(&cfg.Title, doc.Title)
	setString(&cfg.CompanyName, doc.CompanyName)
	setString(&cfg.Logo, doc.Logo)
	setString(&cfg.PrimaryColor, doc.PrimaryColor)
	setString(&cfg.SecondaryColor, doc.SecondaryColor)
	setString(&cfg.UserName, doc.UserName)

	applySection(&cfg.Dashboard, doc.Dashboard)
	applySection(&cfg.Analytics, doc.Analytics)

	if doc.Clients != nil {
		cfg.Clients = append([]model.Client(nil), doc.Clients...)
	}

	if f := doc.Features; f != nil {
		setBool(&cfg.Features.DataImport, f.DataImport)
		setBool(&cfg.Features.Analytics, f.Analytics)
		setBool(&cfg.Features.Reporting, f.Reporting)
		setBool(&cfg.Features.EmailAutomation, f.EmailAutomation)
	}

	if len(doc.Data) > 0 && out == nil {
		out = make(model.CustomData, len(doc.Data))
	}

	for key, list := range doc.Data {
		out[key] = append([]string(nil), list...)
	}

	return cfg, out
}

// FromConfig builds a complete document describing cfg and data.
func FromConfig(cfg model.AppConfig, data model.CustomData) Document {
	c := cfg.Clone()
	f := c.Features

	return Document{
		Title:          &c.Title,
		CompanyName:    &c.CompanyName,
		Logo:           &c.Logo,
		PrimaryColor:   &c.PrimaryColor,
		SecondaryColor: &c.SecondaryColor,
		UserName:       &c.UserName,
		Dashboard:      &SectionDocument{Tabs: c.Dashboard.Tabs, Charts: c.Dashboard.Charts},
		Analytics:      &SectionDocument{Tabs: c.Analytics.Tabs, Charts: c.Analytics.Charts},
		Clients:        c.Clients,
		Features: &FeaturesDocument{
			DataImport:      &f.DataImport,
			Analytics:       &f.Analytics,
			Reporting:       &f.Reporting,
			EmailAutomation: &f.EmailAutomation,
		},
		Data: data.Clone(),
	}
}

// EncodeTOML exports cfg and data as a complete TOML document.
func EncodeTOML(cfg model.AppConfig, data model.CustomData) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(FromConfig(cfg, data)); err != nil {
		return nil, fmt.Errorf("encode toml document: %w", err)
	}

	return buf.Bytes(), nil
}

func applySection(dst *model.Section, doc *SectionDocument) {
	if doc == nil {
		return
	}

	if doc.Tabs != nil {
		dst.Tabs = append([]model.TabConfig(nil), doc.Tabs...)
	}

	if len(doc.Charts) > 0 && dst.Charts == nil {
		dst.Charts = make(map[string]model.ChartConfig, len(doc.Charts))
	}

	for name, chart := range doc.Charts {
		dst.Charts[name] = chart.Clone()
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
