package model

import "github.com/LerianStudio/lib-dashboard-go/constant"

// Features holds the boolean toggles gating optional host behavior.
type Features struct {
	DataImport      bool `json:"dataImport" toml:"dataImport"`
	Analytics       bool `json:"analytics" toml:"analytics"`
	Reporting       bool `json:"reporting" toml:"reporting"`
	EmailAutomation bool `json:"emailAutomation" toml:"emailAutomation"`
}

// FeatureNames lists the declared flag keys in declaration order.
var FeatureNames = []string{
	constant.FeatureDataImport,
	constant.FeatureAnalytics,
	constant.FeatureReporting,
	constant.FeatureEmailAutomation,
}

// Enabled returns the flag value and whether the name is a declared flag.
func (f Features) Enabled(name string) (enabled bool, known bool) {
	switch name {
	case constant.FeatureDataImport:
		return f.DataImport, true
	case constant.FeatureAnalytics:
		return f.Analytics, true
	case constant.FeatureReporting:
		return f.Reporting, true
	case constant.FeatureEmailAutomation:
		return f.EmailAutomation, true
	default:
		return false, false
	}
}

// Set changes one flag. It reports false when the name is not a declared flag.
func (f *Features) Set(name string, enabled bool) bool {
	switch name {
	case constant.FeatureDataImport:
		f.DataImport = enabled
	case constant.FeatureAnalytics:
		f.Analytics = enabled
	case constant.FeatureReporting:
		f.Reporting = enabled
	case constant.FeatureEmailAutomation:
		f.EmailAutomation = enabled
	default:
		return false
	}

	return true
}

// AsMap returns the flags keyed by their JSON names.
func (f Features) AsMap() map[string]bool {
	out := make(map[string]bool, len(FeatureNames))
	for _, name := range FeatureNames {
		out[name], _ = f.Enabled(name)
	}

	return out
}
