package config

// AssetConfig holds asset paths inside the embedded asset filesystem
type AssetConfig struct {
	HandTexture string
	FoxTexture  string
	HandModel   string
	StageLayout string
}

var Assets AssetConfig

func init() {
	Assets = AssetConfig{
		HandTexture: "data/hand.png",
		FoxTexture:  "data/fox.png",
		HandModel:   "data/hand.obj",
		StageLayout: "data/stage.tmx",
	}
}
