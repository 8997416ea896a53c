package main

var buildVersion = "dev"

func init() {
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func versionString() string {
	return "todo " + buildVersion
}
