package output

import (
	"gopkg.in/yaml.v3"

	"github.com/groland11/openvpn-check-config/pkg/checker"
	"github.com/groland11/openvpn-check-config/pkg/logger"
)

func (f *formatter) formatYAML(reports []checker.Report) (string, error) {
	f.log.Debug("Formatting YAML output")

	// Reuse the JSON document structure for YAML output.
	doc := f.buildDoc(reports)

	bytes, err := yaml.Marshal(doc)
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}
