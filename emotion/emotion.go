// Package emotion defines the closed set of emotion tags a day can be
// marked with, together with their display glyphs and suggested activities.
package emotion

// Tag identifies one of the fixed emotional states.
type Tag string

const (
	Happy   Tag = "happy"
	Sad     Tag = "sad"
	Angry   Tag = "angry"
	Neutral Tag = "neutral"
	Anxious Tag = "anxious"
)

var all = []Tag{Happy, Sad, Angry, Neutral, Anxious}

var glyphs = map[Tag]string{
	Happy:   "😊",
	Sad:     "😢",
	Angry:   "😠",
	Neutral: "😐",
	Anxious: "😰",
}

// activities holds the static, ordered suggestion list per tag.
// Entries are opaque display strings; the engine never interprets them.
var activities = map[Tag][]string{
	Happy:   {"Chia sẻ niềm vui với bạn bè", "Ghi nhật ký về những điều tích cực"},
	Sad:     {"Nghe nhạc yêu thích", "Đi dạo trong công viên"},
	Angry:   {"Thực hành hít thở sâu", "Viết ra những suy nghĩ của bạn"},
	Neutral: {"Thử một sở thích mới", "Đọc một cuốn sách hay"},
	Anxious: {"Thực hành thiền 5 phút", "Nói chuyện với người bạn tin tưởng"},
}

// All returns the tags in declaration order.
func All() []Tag {
	return append([]Tag(nil), all...)
}

// Valid reports whether t belongs to the closed tag set.
func Valid(t Tag) bool {
	_, ok := glyphs[t]
	return ok
}

// Glyph returns the display glyph for t, or "" for an unknown tag.
func Glyph(t Tag) string {
	return glyphs[t]
}

// Activities returns a copy of the suggested activities for t. Unknown tags
// yield an empty list; the tag set is closed so this should not happen in
// correct operation.
func Activities(t Tag) []string {
	return append([]string(nil), activities[t]...)
}
