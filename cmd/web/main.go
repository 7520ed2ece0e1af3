package main

import "github.com/Abbeydevs/ambassadors-talent-agency-sub000/internal/app"

func main() {
	app.Run()
}
