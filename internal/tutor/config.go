package tutor

import "github.com/abhisek/tutorly/internal/heuristics"

// Prompts holds the instructions sent to the completion provider and the
// fixed strings used when building exercises and summaries.
type Prompts struct {
	ExplainSystem      string `yaml:"explain_system"`
	ExplainInstruction string `yaml:"explain_instruction"`
	QuestionLabel      string `yaml:"question_label"`
	RelatedLabel       string `yaml:"related_label"`
	LevelLabel         string `yaml:"level_label"`

	GradeSystem        string   `yaml:"grade_system"`
	GradeInstruction   string   `yaml:"grade_instruction"`
	ExerciseLabel      string   `yaml:"exercise_label"`
	ExpectedLabel      string   `yaml:"expected_label"`
	StudentAnswerLabel string   `yaml:"student_answer_label"`
	GradeHints         []string `yaml:"grade_hints"`
	GradeNext          string   `yaml:"grade_next"`
	CommentaryHeading  string   `yaml:"commentary_heading"`

	// SynthesizedPrefix precedes the example in a synthesized exercise.
	SynthesizedPrefix  string `yaml:"synthesized_prefix"`
	PlaceholderExample string `yaml:"placeholder_example"`
	PlaceholderAnswer  string `yaml:"placeholder_answer"`

	// ProgressFormat receives attempts, correct and level, in that order.
	ProgressFormat string `yaml:"progress_format"`
}

// DefaultPrompts returns the built-in Arabic prompts.
func DefaultPrompts() Prompts {
	return Prompts{
		ExplainSystem:      "أنت معلّم لطيف يشرح بحسب مستوى الطالب ويعطي أمثلة قصيرة وخطوات واضحة.",
		ExplainInstruction: "اكتب شرحًا واضحًا ومخصصًا، مثالًا واحدًا، وخطوات تطبيق مختصرة.",
		QuestionLabel:      "السؤال",
		RelatedLabel:       "المفاهيم ذات الصلة",
		LevelLabel:         "مستوى الطالب",

		GradeSystem:        "أنت مصحّح لطيف يعطي خطوات تصحيح بناءة دون إحباط.",
		GradeInstruction:   "أعطِ تغذية راجعة قصيرة بثلاث نقاط: أين الخطأ/الصواب، خطوة تصحيح، ونصيحة متابعة.",
		ExerciseLabel:      "التمرين",
		ExpectedLabel:      "الإجابة المتوقعة",
		StudentAnswerLabel: "إجابة الطالب",
		GradeHints: []string{
			"قارن إجابتك بالخطوات المعروضة في الشرح.",
			"تحقق من التعريف، ثم أعد صياغة الحل خطوة خطوة.",
		},
		GradeNext:         "راجع مثالًا مشابهًا ثم أعد محاولة على مستوى أدنى إذا لزم.",
		CommentaryHeading: "توجيه إضافي:",

		SynthesizedPrefix:  "اشرح المثال التالي ثم طبّقه: ",
		PlaceholderExample: "مثال بسيط",
		PlaceholderAnswer:  "(إجابة متوقعة)",

		ProgressFormat: "المحاولات: %d, الصحيحة: %d, المستوى التقديري: %s",
	}
}

// Merge returns p with empty fields taken from defaults.
func (p Prompts) Merge(defaults Prompts) Prompts {
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&p.ExplainSystem, defaults.ExplainSystem)
	fill(&p.ExplainInstruction, defaults.ExplainInstruction)
	fill(&p.QuestionLabel, defaults.QuestionLabel)
	fill(&p.RelatedLabel, defaults.RelatedLabel)
	fill(&p.LevelLabel, defaults.LevelLabel)
	fill(&p.GradeSystem, defaults.GradeSystem)
	fill(&p.GradeInstruction, defaults.GradeInstruction)
	fill(&p.ExerciseLabel, defaults.ExerciseLabel)
	fill(&p.ExpectedLabel, defaults.ExpectedLabel)
	fill(&p.StudentAnswerLabel, defaults.StudentAnswerLabel)
	fill(&p.GradeNext, defaults.GradeNext)
	fill(&p.CommentaryHeading, defaults.CommentaryHeading)
	fill(&p.SynthesizedPrefix, defaults.SynthesizedPrefix)
	fill(&p.PlaceholderExample, defaults.PlaceholderExample)
	fill(&p.PlaceholderAnswer, defaults.PlaceholderAnswer)
	fill(&p.ProgressFormat, defaults.ProgressFormat)
	if len(p.GradeHints) == 0 {
		p.GradeHints = defaults.GradeHints
	}
	return p
}

// Config holds orchestrator settings. Zero fields take their defaults.
type Config struct {
	ExplainTemperature  float64
	FeedbackTemperature float64
	Texts               heuristics.Texts
	Prompts             Prompts
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		ExplainTemperature:  0.2,
		FeedbackTemperature: 0.3,
		Texts:               heuristics.DefaultTexts(),
		Prompts:             DefaultPrompts(),
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.ExplainTemperature == 0 {
		c.ExplainTemperature = d.ExplainTemperature
	}
	if c.FeedbackTemperature == 0 {
		c.FeedbackTemperature = d.FeedbackTemperature
	}
	c.Texts = c.Texts.Merge(d.Texts)
	c.Prompts = c.Prompts.Merge(d.Prompts)
	return c
}
