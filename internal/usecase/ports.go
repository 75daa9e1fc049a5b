package usecase

import (
	"github.com/3-lines-studio/showcase/internal/adapters/fs"
	"github.com/3-lines-studio/showcase/internal/core"
)

type Backend = core.Backend

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(emoji, msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)
}

type FileSystem = fs.FileSystem
