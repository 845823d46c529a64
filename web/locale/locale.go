package locale

import (
	"embed"
	"io/fs"
	"strings"

	"github.com/Gabriel-Diniz-beck/Gerenciador-de-biblioteca/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

var (
	i18nBundle *i18n.Bundle
	localizer  *i18n.Localizer
)

// InitLocalizer parses the embedded translation files. Portuguese is the
// default language, matching the audience of the original panel.
func InitLocalizer(i18nFS embed.FS) error {
	i18nBundle = i18n.NewBundle(language.MustParse("pt-BR"))
	i18nBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	if err := parseTranslationFiles(i18nFS, i18nBundle); err != nil {
		return err
	}

	localizer = i18n.NewLocalizer(i18nBundle, "pt-BR")
	return nil
}

func createTemplateData(params []string, seperator ...string) map[string]any {
	var sep string = "=="
	if len(seperator) > 0 {
		sep = seperator[0]
	}

	templateData := make(map[string]any)
	for _, param := range params {
		parts := strings.SplitN(param, sep, 2)
		templateData[parts[0]] = parts[1]
	}

	return templateData
}

// I18n resolves a message key with optional "name==value" template params.
func I18n(key string, params ...string) string {
	if localizer == nil {
		// Localizer not ready; fall back to the key instead of panicking.
		return key
	}

	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: createTemplateData(params),
	})
	if err != nil {
		logger.Errorf("Failed to localize message: %v", err)
		return key
	}

	return msg
}

// LocalizerMiddleware picks the request language from the lang cookie or
// the Accept-Language header and exposes the translate function to
// handlers via the context.
func LocalizerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string
		if cookie, err := c.Request.Cookie("lang"); err == nil {
			lang = cookie.Value
		} else {
			lang = c.GetHeader("Accept-Language")
		}

		if i18nBundle != nil {
			localizer = i18n.NewLocalizer(i18nBundle, lang, "pt-BR")
		}

		c.Set("localizer", localizer)
		c.Set("I18n", I18n)
		c.Next()
	}
}

func parseTranslationFiles(i18nFS embed.FS, bundle *i18n.Bundle) error {
	return fs.WalkDir(i18nFS, "translation",
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			data, err := i18nFS.ReadFile(path)
			if err != nil {
				return err
			}
			_, err = bundle.ParseMessageFileBytes(data, path)
			return err
		})
}
