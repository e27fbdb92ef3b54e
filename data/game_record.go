package data

// GameRecord is one entry of the gameSort document. Every property is
// optional and may hold any JSON value, accessors only report non-empty strings.
type GameRecord map[string]any

func (gr GameRecord) GetString(property string) (string, bool) {
	if gr == nil {
		return "", false
	}
	if s, ok := gr[property].(string); ok && s != "" {
		return s, true
	}
	return "", false
}

func (gr GameRecord) StringOr(property, defaultValue string) string {
	if s, ok := gr.GetString(property); ok {
		return s
	}
	return defaultValue
}

func (gr GameRecord) Raw(property string) any {
	if gr == nil {
		return nil
	}
	return gr[property]
}

func (gr GameRecord) AppName() string { return gr.StringOr(AppNameProperty, "") }
func (gr GameRecord) DevName() string { return gr.StringOr(DevNameProperty, "") }
