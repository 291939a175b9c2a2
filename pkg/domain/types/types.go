package types

// Version is the tagrel build version, overwritten at build time via ldflags
var Version = "dev"

// AppName is used for health responses and user agents
const AppName = "tagrel"
