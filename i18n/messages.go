package i18n

// Messages holds the user-facing strings for the link-resolution flow.
type Messages struct {
	ErrorTitle       string
	ErrorProcessing  string
	ErrorCampaign    string
	ErrorUnknownType string
	LinkNotFound     string
	Retry            string
	LandingTitle     string
	LandingTagline   string
}

var catalogs = map[Locale]Messages{
	LocaleEN: {
		ErrorTitle:       "Something went wrong",
		ErrorProcessing:  "Could not process this link. Please try again.",
		ErrorCampaign:    "Could not load the campaign for this link.",
		ErrorUnknownType: "This link type is not supported.",
		LinkNotFound:     "This link is unavailable or has expired.",
		Retry:            "Try again",
		LandingTitle:     "Maetry",
		LandingTagline:   "Salon management, bookings and marketing in one place.",
	},
	LocaleRU: {
		ErrorTitle:       "Что-то пошло не так",
		ErrorProcessing:  "Не удалось обработать ссылку. Попробуйте ещё раз.",
		ErrorCampaign:    "Не удалось загрузить кампанию по этой ссылке.",
		ErrorUnknownType: "Этот тип ссылки не поддерживается.",
		LinkNotFound:     "Ссылка недоступна или устарела.",
		Retry:            "Повторить",
		LandingTitle:     "Maetry",
		LandingTagline:   "Управление салоном, записи и маркетинг в одном месте.",
	},
	LocaleES: {
		ErrorTitle:       "Algo salió mal",
		ErrorProcessing:  "No se pudo procesar este enlace. Inténtalo de nuevo.",
		ErrorCampaign:    "No se pudo cargar la campaña de este enlace.",
		ErrorUnknownType: "Este tipo de enlace no es compatible.",
		LinkNotFound:     "Este enlace no está disponible o ha caducado.",
		Retry:            "Reintentar",
		LandingTitle:     "Maetry",
		LandingTagline:   "Gestión de salones, reservas y marketing en un solo lugar.",
	},
}

// Catalog returns the message catalog for a locale, falling back to the
// default locale for anything unknown.
func Catalog(locale Locale) Messages {
	if messages, ok := catalogs[locale]; ok {
		return messages
	}
	return catalogs[DefaultLocale]
}
