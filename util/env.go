package util

import (
	"errors"

	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-dashboard-go/internal/config"
	"github.com/LerianStudio/lib-dashboard-go/model"
	"github.com/LerianStudio/lib-dashboard-go/pkg"
	"github.com/LerianStudio/lib-dashboard-go/validation"
)

// ValidateSettings checks the cross-field rules viper cannot express
func ValidateSettings(s *config.Settings, l log.Logger) error {
	if s == nil {
		return errors.New("dashboard settings are nil")
	}

	if !commons.IsNilOrEmpty(&s.S3.Bucket) && commons.IsNilOrEmpty(&s.S3.Key) {
		err := "s3 bucket is set but the object key environment variable is missing"

		l.Error(err)

		return errors.New(err)
	}

	if !commons.IsNilOrEmpty(&s.S3.Key) && commons.IsNilOrEmpty(&s.S3.Bucket) {
		err := "s3 object key is set but the bucket environment variable is missing"

		l.Error(err)

		return errors.New(err)
	}

	if !commons.IsNilOrEmpty(&s.Remote.URL) && s.Remote.Timeout <= 0 {
		err := "remote timeout must be positive when a remote url is configured"

		l.Error(err)

		return errors.New(err)
	}

	if s.Refresh.Interval < 0 {
		err := "refresh interval must not be negative"

		l.Error(err)

		return errors.New(err)
	}

	known := validation.FeatureKeys(model.Features{})
	for _, name := range pkg.ParseList(s.Features.Disabled) {
		if !pkg.ContainsID(known, name) {
			err := "unknown feature in disabled features list: " + name

			l.Error(err)

			return errors.New(err)
		}
	}

	return nil
}
