package config

// Config holds the generator settings. Every field has a viper default that
// reproduces the fixed paths the brochure has always been built with.
type Config struct {
	DataFile         string `mapstructure:"dataFile"`
	ImagesDir        string `mapstructure:"imagesDir"`
	OutputFile       string `mapstructure:"outputFile"`
	AnnouncementsDir string `mapstructure:"announcementsDir"`
	LogoPath         string `mapstructure:"logoPath"`
	VideosDir        string `mapstructure:"videosDir"`
	MapURL           string `mapstructure:"mapURL"`
	TestimonyEmail   string `mapstructure:"testimonyEmail"`
	Markdown         bool   `mapstructure:"markdown"`
	Debug            bool   `mapstructure:"debug"`
}

// Defaults returns the configuration used when no config file, flag or
// environment variable overrides a value.
func Defaults() Config {
	return Config{
		DataFile:         "events_data.json",
		ImagesDir:        "slideshow_folder",
		OutputFile:       "index.html",
		AnnouncementsDir: "announcements",
		LogoPath:         "Images/GCBC LOGO Transparent.png",
		VideosDir:        "missions_videos",
		MapURL:           "https://maps.app.goo.gl/Z1PNBhH6kBJWH3zk8",
		TestimonyEmail:   "gcbctt@gmail.com",
		Markdown:         true,
	}
}
