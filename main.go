package main

import "github.com/sangamhr/kyc-portal/cmd"

func main() {
	cmd.Execute()
}
