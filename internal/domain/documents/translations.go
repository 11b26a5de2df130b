package documents

// Cover-page label bundles per language. Lookup falls back to English for
// unknown codes; every bundle carries the same key set.
var coverTranslations = map[string]map[string]string{
	"en": {
		"cover_page_title_suffix":      "Project Documentation",
		"cover_logo_alt_text":          "Company Logo",
		"cover_client_label":           "Client",
		"cover_project_label":          "Project",
		"cover_date_label":             "Date",
		"cover_version_label":          "Version",
		"cover_prepared_for_label":     "Prepared For",
		"cover_prepared_by_label":      "Prepared By",
		"cover_contact_label":          "Contact",
		"cover_confidentiality_footer": "This document is confidential and intended solely for the named recipient.",
	},
	"fr": {
		"cover_page_title_suffix":      "Documentation du Projet",
		"cover_logo_alt_text":          "Logo de la Société",
		"cover_client_label":           "Client",
		"cover_project_label":          "Projet",
		"cover_date_label":             "Date",
		"cover_version_label":          "Version",
		"cover_prepared_for_label":     "Préparé pour",
		"cover_prepared_by_label":      "Préparé par",
		"cover_contact_label":          "Contact",
		"cover_confidentiality_footer": "Ce document est confidentiel et destiné exclusivement au destinataire désigné.",
	},
	"ar": {
		"cover_page_title_suffix":      "وثائق المشروع",
		"cover_logo_alt_text":          "شعار الشركة",
		"cover_client_label":           "العميل",
		"cover_project_label":          "المشروع",
		"cover_date_label":             "التاريخ",
		"cover_version_label":          "الإصدار",
		"cover_prepared_for_label":     "أُعد لصالح",
		"cover_prepared_by_label":      "أُعد بواسطة",
		"cover_contact_label":          "جهة الاتصال",
		"cover_confidentiality_footer": "هذه الوثيقة سرية ومخصصة حصريًا للمستلم المذكور.",
	},
	"tr": {
		"cover_page_title_suffix":      "Proje Dokümantasyonu",
		"cover_logo_alt_text":          "Şirket Logosu",
		"cover_client_label":           "Müşteri",
		"cover_project_label":          "Proje",
		"cover_date_label":             "Tarih",
		"cover_version_label":          "Sürüm",
		"cover_prepared_for_label":     "Hazırlanan Taraf",
		"cover_prepared_by_label":      "Hazırlayan",
		"cover_contact_label":          "İletişim",
		"cover_confidentiality_footer": "Bu belge gizlidir ve yalnızca adı geçen alıcıya yöneliktir.",
	},
}

// CoverTranslations returns a copy of the label bundle for a language,
// falling back to English for unknown codes. Never fails.
func CoverTranslations(languageCode string) map[string]string {
	bundle, ok := coverTranslations[languageCode]
	if !ok {
		bundle = coverTranslations["en"]
	}
	out := make(map[string]string, len(bundle))
	for k, v := range bundle {
		out[k] = v
	}
	return out
}
