package server

import (
	"context"
	"fmt"

	"github.com/WillZhangFly/one-second/internal"
	"github.com/WillZhangFly/one-second/types"
)

func (s *Server) addLocales(ctx context.Context, locales []*types.LocaleData) error {
	for _, locale := range locales {
		if err := s.addLocale(ctx, locale); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) addLocale(ctx context.Context, locale *types.LocaleData) error {
	if err := internal.RegisterLocale(*locale); err != nil {
		return fmt.Errorf("failed to register locale %s: %w", locale.ID, err)
	}
	return nil
}
