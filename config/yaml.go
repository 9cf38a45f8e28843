package config

import (
	"io/ioutil"

	"github.com/pbanos/grf/grferrors"
	yaml "gopkg.in/yaml.v2"
)

// FromYAML parses a Config from a YAML document, the way feature metadata
// is parsed in the teacher's feature/yaml package.
func FromYAML(doc []byte) (Config, error) {
	c := Default()
	if err := yaml.UnmarshalStrict(doc, &c); err != nil {
		return Config{}, grferrors.Wrapf(err, "parsing config yaml")
	}
	return c, nil
}

// FromYAMLFile reads and parses a Config from a YAML file at path.
func FromYAMLFile(path string) (Config, error) {
	doc, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, grferrors.Wrapf(err, "reading config file %s", path)
	}
	return FromYAML(doc)
}
