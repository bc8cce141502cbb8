// Package logging routes the standard logger to a rotating file so debug
// output never corrupts the in-place terminal display.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup points the standard logger at a rotating log file under
// ~/.cc-todo-tracker. When the home directory cannot be determined,
// logging is disabled entirely; a display tool must never write log
// lines to the screen it is drawing on.
func Setup(name string) {
	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(home, ".cc-todo-tracker", name+".log"),
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	})
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
}
