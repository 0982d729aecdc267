package samples

import "fmt"

// Sample is a named piece of demonstration text
type Sample struct {
	Name string
	Text string
}

// Greetings returns "hello world" in several scripts
func Greetings() []Sample {
	return []Sample{
		{"english", "Hello World! 👋"},
		{"chinese", "你好世界！🌍"},
		{"japanese", "こんにちは世界！🗾"},
		{"korean", "안녕하세요 세계！🇰🇷"},
		{"french", "Bonjour le monde！🇫🇷"},
		{"spanish", "¡Hola mundo！🇪🇸"},
		{"arabic", "مرحبا بالعالم！🌎"},
		{"emoji", "👋🌍🎉✨🚀💻🎯"},
	}
}

// EdgeCases returns short inputs that stress the width model
func EdgeCases() []Sample {
	cases := []string{
		"",
		" ",
		"\t",
		"A",
		"中",
		"🎯",
		"A中🎯",
		"Hello 世界 🌍",
		"这是一个很长的中文句子用来测试换行功能",
		"🎉🎊🎈🎁🎂🍰🧁🍭🍬🍫🍩🍪🎯🎲🎮",
		"Mixed: ASCII + 中文 + emoji 🎯 + symbols ∑∏∫",
		"Line with\ttabs\tand\tCJK\t中文\ttabs",
		"Café naïve résumé façade",
		"∑∏∫∂∇∞≈≠±×÷√∝∈∉∪∩⊂⊃⊆⊇",
		"←→↑↓↔↕↖↗↘↙⇐⇒⇑⇓⇔⇕",
	}

	out := make([]Sample, len(cases))
	for i, c := range cases {
		out[i] = Sample{Name: fmt.Sprintf("case %02d", i), Text: c}
	}
	return out
}

// All returns greetings followed by edge cases
func All() []Sample {
	return append(Greetings(), EdgeCases()...)
}

// Person is one row of the multilingual alignment table
type Person struct {
	Name   string
	Age    int
	City   string
	Status string
}

// TableHeader is the mixed-script header of the alignment table
const TableHeader = "Name 名前 이름 | Age 年齢 나이 | City 城市 도시 | Status 状态 상태"

// People returns the rows of the alignment table
func People() []Person {
	return []Person{
		{"John Smith", 25, "New York", "Active ✅"},
		{"田中太郎", 30, "東京", "待機中 ⏳"},
		{"김철수", 35, "서울", "완료 ✅"},
		{"José García", 28, "Madrid", "En progreso 🔄"},
		{"محمد أحمد", 32, "القاهرة", "نشط ✅"},
	}
}
