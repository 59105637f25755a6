package main

import "github.com/techbucket/techbucket-web/internal/cmd"

func main() {
	cmd.Execute()
}
