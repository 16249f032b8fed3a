package main

import "subflix/app"

func main() {
	app.Run()
}
