package reportfmt

type ReportDTO struct {
	Color1     ColorDTO       `yaml:"color1" json:"color1"`
	Color2     ColorDTO       `yaml:"color2" json:"color2"`
	Ratio      float64        `yaml:"ratio" json:"ratio"`
	RatioText  string         `yaml:"ratio_text" json:"ratio_text"`
	Compliance ComplianceDTO  `yaml:"compliance" json:"compliance"`
	Criteria   []CriterionDTO `yaml:"criteria" json:"criteria"`
}

type ColorDTO struct {
	Hex       string  `yaml:"hex" json:"hex"`
	RGB       []int   `yaml:"rgb,flow" json:"rgb"`
	Luminance float64 `yaml:"luminance" json:"luminance"`
}

type ComplianceDTO struct {
	AALargeText   bool `yaml:"aa_large_text" json:"aa_large_text"`
	AANormalText  bool `yaml:"aa_normal_text" json:"aa_normal_text"`
	AAALargeText  bool `yaml:"aaa_large_text" json:"aaa_large_text"`
	AAANormalText bool `yaml:"aaa_normal_text" json:"aaa_normal_text"`
}

type CriterionDTO struct {
	Level    string  `yaml:"level" json:"level"`
	TextSize string  `yaml:"text_size" json:"text_size"`
	Min      float64 `yaml:"min_ratio" json:"min_ratio"`
	Passed   bool    `yaml:"passed" json:"passed"`
}
