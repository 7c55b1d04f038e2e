// @title           Recruitment API
// @version         1.0
// @description     Job board: seekers apply, companies post jobs and review applicants, administrators moderate.
// @host            localhost:5000
// @BasePath        /

package main

import "recruitment_backend/internal/app"

func main() {
	app.Run()
}
