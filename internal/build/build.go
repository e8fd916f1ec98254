package build

// Version is stamped at build time via -ldflags "-X ...build.Version=v1.2.3"
var Version = "dev"
