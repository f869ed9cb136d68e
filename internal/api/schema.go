package api

// questionDef is the schema fragment shared by both content payloads.
var questionDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":             map[string]any{"type": "integer"},
		"text":           map[string]any{"type": "string"},
		"option0":        map[string]any{"type": "string"},
		"option1":        map[string]any{"type": "string"},
		"option2":        map[string]any{"type": "string"},
		"option3":        map[string]any{"type": "string"},
		"correct_option": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
		"explanation":    map[string]any{"type": "string"},
	},
	"required": []any{"id", "text", "option0", "option1", "option2", "option3", "correct_option"},
}

// progressRecordDef matches one per-question progress record. The
// selected_option field is null, an option index, or the legacy
// skip sentinel.
var progressRecordDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question":        map[string]any{"type": "integer"},
		"selected_option": map[string]any{"type": []any{"integer", "null"}},
		"is_flagged":      map[string]any{"type": "boolean"},
	},
	"required": []any{"question"},
}

// questionPageSchema validates the practice content payload.
var questionPageSchema = &payloadSchema{
	Name: "question-page",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":              map[string]any{"type": "integer"},
			"name":            map[string]any{"type": "string"},
			"total_questions": map[string]any{"type": "integer", "minimum": 0},
			"chapters": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "integer"},
						"name": map[string]any{"type": "string"},
						"subtopics": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":        map[string]any{"type": "integer"},
									"name":      map[string]any{"type": "string"},
									"questions": map[string]any{"type": "array", "items": questionDef},
								},
								"required": []any{"id", "questions"},
							},
						},
					},
					"required": []any{"id", "subtopics"},
				},
			},
		},
		"required": []any{"id", "total_questions", "chapters"},
	},
}

// quizProgressSchema validates the nested (practice) progress payload.
var quizProgressSchema = &payloadSchema{
	Name: "quiz-progress",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"attempted_questions":  map[string]any{"type": "integer", "minimum": 0},
			"flagged_count":        map[string]any{"type": "integer", "minimum": 0},
			"skipped_count":        map[string]any{"type": "integer", "minimum": 0},
			"correct_count":        map[string]any{"type": "integer", "minimum": 0},
			"last_viewed_question": map[string]any{"type": []any{"integer", "null"}},
			"is_submitted":         map[string]any{"type": "boolean"},
			"chapters": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"chapter":             map[string]any{"type": "integer"},
						"attempted_questions": map[string]any{"type": "integer", "minimum": 0},
						"subtopics": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"subtopic":            map[string]any{"type": "integer"},
									"attempted_questions": map[string]any{"type": "integer", "minimum": 0},
									"questions":           map[string]any{"type": "array", "items": progressRecordDef},
								},
								"required": []any{"subtopic"},
							},
						},
					},
					"required": []any{"chapter"},
				},
			},
		},
		"required": []any{"attempted_questions"},
	},
}

// fullTestPageSchema validates the flat full-test content payload.
var fullTestPageSchema = &payloadSchema{
	Name: "full-test-page",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"total_questions": map[string]any{"type": "integer", "minimum": 0},
			"questions":       map[string]any{"type": "array", "items": questionDef},
		},
		"required": []any{"total_questions", "questions"},
	},
}

// testProgressSchema validates the flat full-test progress payload.
var testProgressSchema = &payloadSchema{
	Name: "test-progress",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"attempted_questions":  map[string]any{"type": "integer", "minimum": 0},
			"last_viewed_question": map[string]any{"type": []any{"integer", "null"}},
			"is_submitted":         map[string]any{"type": "boolean"},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":              map[string]any{"type": "integer"},
						"question":        map[string]any{"type": "string"},
						"selected_option": map[string]any{"type": []any{"integer", "null"}},
						"is_flagged":      map[string]any{"type": "boolean"},
					},
					"required": []any{"id"},
				},
			},
		},
		"required": []any{"attempted_questions", "questions"},
	},
}
