package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/WillZhangFly/one-second/types"
)

type Source func(*Server) error

func YAMLSource(path string) Source {
	return func(s *Server) error {
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		dec := yaml.NewDecoder(
			bytes.NewBuffer(content),
			yaml.Validator(validate),
			yaml.Strict(),
		)
		var v struct {
			Locales []*types.LocaleData `yaml:"locales" validate:"required"`
		}
		if err := dec.Decode(&v); err != nil {
			return errors.New(yaml.FormatError(err, false, true))
		}
		return s.addLocales(context.Background(), v.Locales)
	}
}

func JSONSource(path string) Source {
	return func(s *Server) error {
		jsonFile, err := os.Open(path)
		if err != nil {
			return err
		}

		content, err := io.ReadAll(jsonFile)
		if err != nil {
			return err
		}

		err = jsonFile.Close()
		if err != nil {
			return err
		}

		var v struct {
			Locales []*types.LocaleData `json:"locales"`
		}
		if err := json.Unmarshal([]byte(content), &v); err != nil {
			return err
		}
		return s.addLocales(context.Background(), v.Locales)
	}
}

func StructSource(locales ...*types.LocaleData) Source {
	return func(s *Server) error {
		return s.addLocales(context.Background(), locales)
	}
}
