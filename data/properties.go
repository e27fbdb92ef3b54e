package data

const (
	GameSortProperty = "gameSort"

	AppNameProperty = "appName"
	DevNameProperty = "devName"
	ImgProperty     = "img"
	AppProperty     = "app"
	RepoProperty    = "repo"
)
