package types

// LocaleData is the serializable name table for one locale. Names are given
// in rendering order: months January-first, weekdays Sunday-first, meridiems
// as the AM marker followed by the PM marker. Meridiems may be omitted, in
// which case the English markers apply.
type LocaleData struct {
	ID            string   `yaml:"id" json:"id" validate:"required,bcp47"`
	Months        []string `yaml:"months" json:"months" validate:"required,len=12,dive,required"`
	MonthsShort   []string `yaml:"monthsShort" json:"monthsShort" validate:"required,len=12,dive,required"`
	Weekdays      []string `yaml:"weekdays" json:"weekdays" validate:"required,len=7,dive,required"`
	WeekdaysShort []string `yaml:"weekdaysShort" json:"weekdaysShort" validate:"required,len=7,dive,required"`
	Meridiems     []string `yaml:"meridiems" json:"meridiems" validate:"omitempty,len=2,dive,required"`
}
