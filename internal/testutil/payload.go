package testutil

// ValidPayload returns a decoded request body that passes validation. Callers
// may mutate the returned map.
func ValidPayload() map[string]interface{} {
	return map[string]interface{}{
		"last_name":                "山田",
		"first_name":               "花子",
		"last_name_kana":           "ヤマダ",
		"first_name_kana":          "ハナコ",
		"email":                    "hanako@example.com",
		"vitality_1_10":            float64(7),
		"digestive_rhythm":         "普通",
		"sleep_quality":            []interface{}{"浅い", "途中で目が覚める"},
		"tension_areas":            []interface{}{"肩", "首"},
		"skin_condition":           "乾燥",
		"mental_state":             "落ち着いている",
		"sensory_sensitivity":      []interface{}{"None"},
		"let_go_text":              "仕事のストレス",
		"invite_in":                []interface{}{"軽さ"},
		"communication_preference": "静かに",
		"allergies_text":           "ナッツ",
		"medical_history_text":     "なし",
		"female_condition":         "該当なし",
	}
}
