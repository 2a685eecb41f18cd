package api

import (
	"errors"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxPageNameRunes = 200

// pageNameForbidden are the characters with a meaning in the wiki link syntax.
const pageNameForbidden = "[]|#<>\""

var registerOnce sync.Once

// registerValidators adds the custom binding tags to the gin validator.
func registerValidators() (err error) {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected binding validator engine")
			return
		}

		if err = v.RegisterValidation("page_name", validatePageNameField); err != nil {
			return
		}

		err = v.RegisterValidation("dialect", validateDialectField)
	})

	return err
}

func validatePageNameField(fl validator.FieldLevel) bool {
	_, ok := normalizePageName(fl.Field().String())
	return ok
}

func validateDialectField(fl validator.FieldLevel) bool {
	_, err := wikitext.ParseDialect(fl.Field().String(), false, false)
	return err == nil
}

// normalizePageName trims the surrounding slashes and checks every segment of the name.
func normalizePageName(name string) (string, bool) {
	name = strings.Trim(name, "/")

	if name == "" || !utf8.ValidString(name) || utf8.RuneCountInString(name) > maxPageNameRunes {
		return "", false
	}

	for _, seg := range strings.Split(name, "/") {
		if seg == "" || strings.TrimSpace(seg) != seg {
			return "", false
		}

		if strings.ContainsAny(seg, pageNameForbidden) {
			return "", false
		}

		if strings.IndexFunc(seg, unicode.IsControl) >= 0 {
			return "", false
		}
	}

	return name, true
}
