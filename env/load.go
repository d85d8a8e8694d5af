package env

import "github.com/joho/godotenv"

// Load reads the given .env files into the process environment without
// overriding variables that are already set. With no arguments it loads
// ".env" from the working directory.
func Load(paths ...string) error {
	return godotenv.Load(paths...)
}

// Overload is like Load but overrides variables that are already set.
func Overload(paths ...string) error {
	return godotenv.Overload(paths...)
}
