package internal

import "github.com/WillZhangFly/one-second/types"

// builtinLocales is the name data shipped with the engine. The first entry
// is the default locale. Additional locales can be registered at runtime
// with RegisterLocale.
var builtinLocales = []types.LocaleData{
	{
		ID: "en-US",
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsShort: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Weekdays: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		WeekdaysShort: []string{
			"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
		},
		Meridiems: []string{"AM", "PM"},
	},
	{
		ID: "en-GB",
		Months: []string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsShort: []string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Weekdays: []string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		WeekdaysShort: []string{
			"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
		},
		Meridiems: []string{"am", "pm"},
	},
	{
		ID: "de-DE",
		Months: []string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthsShort: []string{
			"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
		},
		Weekdays: []string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		WeekdaysShort: []string{
			"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa.",
		},
	},
	{
		ID: "fr-FR",
		Months: []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		MonthsShort: []string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		Weekdays: []string{
			"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi",
		},
		WeekdaysShort: []string{
			"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam.",
		},
	},
	{
		ID: "es-ES",
		Months: []string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthsShort: []string{
			"ene.", "feb.", "mar.", "abr.", "may.", "jun.",
			"jul.", "ago.", "sep.", "oct.", "nov.", "dic.",
		},
		Weekdays: []string{
			"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
		},
		WeekdaysShort: []string{
			"dom.", "lun.", "mar.", "mié.", "jue.", "vie.", "sáb.",
		},
	},
	{
		ID: "it-IT",
		Months: []string{
			"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
		},
		MonthsShort: []string{
			"gen", "feb", "mar", "apr", "mag", "giu",
			"lug", "ago", "set", "ott", "nov", "dic",
		},
		Weekdays: []string{
			"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato",
		},
		WeekdaysShort: []string{
			"dom", "lun", "mar", "mer", "gio", "ven", "sab",
		},
	},
	{
		ID: "pt-BR",
		Months: []string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		MonthsShort: []string{
			"jan", "fev", "mar", "abr", "mai", "jun",
			"jul", "ago", "set", "out", "nov", "dez",
		},
		Weekdays: []string{
			"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado",
		},
		WeekdaysShort: []string{
			"dom", "seg", "ter", "qua", "qui", "sex", "sáb",
		},
	},
	{
		ID: "nl-NL",
		Months: []string{
			"januari", "februari", "maart", "april", "mei", "juni",
			"juli", "augustus", "september", "oktober", "november", "december",
		},
		MonthsShort: []string{
			"jan", "feb", "mrt", "apr", "mei", "jun",
			"jul", "aug", "sep", "okt", "nov", "dec",
		},
		Weekdays: []string{
			"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag",
		},
		WeekdaysShort: []string{
			"zo", "ma", "di", "wo", "do", "vr", "za",
		},
	},
}

func init() {
	for _, data := range builtinLocales {
		if err := RegisterLocale(data); err != nil {
			panic(err)
		}
	}
}
