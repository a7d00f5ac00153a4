package service

import (
	"strings"

	"github.com/hance08/liverdesk/internal/kana"
	"github.com/hance08/liverdesk/internal/model"
)

// FilterLivers keeps livers whose real name, display name or account holder
// contains the keyword.
func FilterLivers(livers []*model.Liver, keyword string) []*model.Liver {
	var out []*model.Liver
	for _, l := range livers {
		if kana.MatchesAny(keyword, l.RealName, l.DisplayName, l.AccountHolder) {
			out = append(out, l)
		}
	}
	return out
}

// SuggestLivers lists livers whose display name contains what has been typed
// so far. Nothing is suggested for empty input.
func SuggestLivers(livers []*model.Liver, typed string) []*model.Liver {
	if strings.TrimSpace(typed) == "" {
		return nil
	}

	var out []*model.Liver
	for _, l := range livers {
		if kana.Matches(kana.Normalize(l.DisplayName), typed) {
			out = append(out, l)
		}
	}
	return out
}

// ResolveLiver finds the liver whose display name equals name once both are
// normalized. The first match wins when display names collide.
func ResolveLiver(livers []*model.Liver, name string) (*model.Liver, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrUnknownLiver
	}

	for _, l := range livers {
		if kana.Equal(l.DisplayName, name) {
			return l, nil
		}
	}
	return nil, ErrUnknownLiver
}
