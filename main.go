package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"viewer/buffer"
	"viewer/config"
	"viewer/terminal"
	"viewer/viewer"
)

const usage = "usage: view <file>"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run loads the file before touching the terminal so that a bad argument
// never leaves a half-drawn screen behind.
func run(args []string, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, usage)
		return 2
	}
	path := args[0]

	cfg, cfgErr := config.Load()
	logFile, err := cfg.OpenLog()
	if err != nil {
		fmt.Fprintf(stderr, "view: cannot open log: %v\n", err)
		return 1
	}
	defer logFile.Close()
	if cfgErr != nil {
		log.Printf("config: %v; using %s theme", cfgErr, cfg.Theme)
	}

	buf, err := buffer.LoadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "view: %v\n", err)
		return 1
	}
	log.Printf("loaded %s: %d lines, %d bytes, %s, %s, language=%q",
		buf.Path(), buf.LineCount(), buf.Size(), buf.LineEnding(), buf.Encoding(), buf.Language())

	sess, err := terminal.Open()
	if err != nil {
		fmt.Fprintf(stderr, "view: %v\n", err)
		return 1
	}
	defer sess.Close()

	v := viewer.New(buf, cfg.GetTheme())
	v.Run(sess, sess.Display())

	log.Printf("quit at line %d", v.Cursor().Row+1)
	return 0
}
