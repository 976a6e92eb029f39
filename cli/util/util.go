package util

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// VersionFunc is a type of function that return version string.
type VersionFunc func(bool, bool) string

// GetFileContentBytes returns file content as a bytes slice.
func GetFileContentBytes(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	fileContent, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return fileContent, nil
}

// JoinPaths concat paths.
func JoinPaths(paths ...string) string {
	path := ""
	for _, pathPart := range paths {
		if filepath.IsAbs(pathPart) {
			path = pathPart
		} else {
			path = filepath.Join(path, pathPart)
		}
	}

	return path
}

// JoinAbspath concat paths and makes the resulting path absolute.
func JoinAbspath(paths ...string) (string, error) {
	var err error
	path := JoinPaths(paths...)
	if path, err = filepath.Abs(path); err != nil {
		return "", fmt.Errorf("failed to get absolute path: %s", err)
	}

	return path, nil
}

// InternalError shows error information, version of bootstrapp and call stack.
func InternalError(format string, f VersionFunc, err ...interface{}) error {
	internalErrorFmt :=
		`whoops! It looks like something is wrong with this version of Bootstrapp CLI.
Error: %s
Version: %s
Stacktrace:
%s
`
	version := f(false, false)

	return fmt.Errorf(internalErrorFmt, fmt.Sprintf(format, err...), version, debug.Stack())
}

// ParseYAML parses yaml file at specified path.
func ParseYAML(path string) (map[string]interface{}, error) {
	fileContent, err := GetFileContentBytes(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read "%s" file: %s`, path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(fileContent, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %s", err)
	}

	return raw, nil
}

// ParseJSON parses json file at specified path.
func ParseJSON(path string) (map[string]interface{}, error) {
	fileContent, err := GetFileContentBytes(path)
	if err != nil {
		return nil, fmt.Errorf(`failed to read "%s" file: %s`, path, err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(fileContent, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %s", err)
	}

	return raw, nil
}

// GetHomeDir returns current home directory.
func GetHomeDir() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", err
	}

	return usr.HomeDir, nil
}

// AskConfirm asks the user for confirmation and returns true if yes.
func AskConfirm(ioReader io.Reader, question string) (bool, error) {
	reader := bufio.NewReader(ioReader)

	for {
		fmt.Printf("%s [y/n]: ", question)

		resp, err := reader.ReadString('\n')
		resp = strings.ToLower(strings.TrimSpace(resp))
		if err != nil {
			return false, err
		}

		if resp == "y" || resp == "yes" {
			return true, nil
		}

		if resp == "n" || resp == "no" {
			return false, nil
		}
	}
}

// IsDir checks if filePath is a directory. Returns true if the directory exists.
func IsDir(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.IsDir()
}

// IsRegularFile checks if filePath is a regular file. Returns true if the file exists
// and it is a regular file.
func IsRegularFile(filePath string) bool {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return false
	}

	return fileInfo.Mode().IsRegular()
}

// Chdir changes current directory and updates PWD environment var accordingly.
// This can be useful for some scripts, which use getenv('PWD') to get working directory.
func Chdir(newPath string) (func() error, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil
	}
	if err = os.Chdir(newPath); err != nil {
		return nil, fmt.Errorf("failed to change directory: %s", err)
	}

	// Update PWD environment var.
	if err = os.Setenv("PWD", newPath); err != nil {
		if err = os.Chdir(cwd); err != nil {
			return nil, fmt.Errorf("failed to change directory back: %w", err)
		}
		os.Setenv("PWD", cwd) // Return PWD back.
		return nil, fmt.Errorf("failed to change PWD environment variable: %w", err)
	}

	return func() error {
		if err = os.Chdir(cwd); err != nil {
			return fmt.Errorf("failed to change directory back: %w", err)
		}
		if err = os.Setenv("PWD", cwd); err != nil {
			return fmt.Errorf("failed to change PWD environment variable: %w", err)
		}
		return nil
	}, nil
}

// CreateDirectory create a directory with existence and error checks.
func CreateDirectory(dirName string, fileMode os.FileMode) error {
	stat, err := os.Stat(dirName)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
	} else {
		if !stat.IsDir() {
			return fmt.Errorf("'%s' already exists and is not a directory", dirName)
		}
		return nil
	}
	if err = os.MkdirAll(dirName, fileMode); err != nil {
		return err
	}
	return nil
}

// ListDirTree returns relative paths of all directories and regular files
// under rootDir, directories before their content.
func ListDirTree(rootDir string) ([]string, error) {
	relPaths := make([]string, 0)
	err := filepath.Walk(rootDir,
		func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if filePath == rootDir {
				return nil
			}
			relPath, err := filepath.Rel(rootDir, filePath)
			if err != nil {
				return err
			}
			relPaths = append(relPaths, relPath)
			return nil
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %s", rootDir, err)
	}
	return relPaths, nil
}

// RelativeToCurrentWorkingDir returns a path relative to current working dir.
// In case of error, fullpath is returned.
func RelativeToCurrentWorkingDir(fullpath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return fullpath
	}
	relPath, err := filepath.Rel(cwd, fullpath)
	if err != nil {
		return fullpath
	}
	return relPath
}

// HandleCmdErr handles an error returned by command implementation.
// If received error is of an ArgError type, usage help is printed.
func HandleCmdErr(cmd *cobra.Command, err error) {
	if err != nil {
		var argError *ArgError
		if errors.As(err, &argError) {
			log.Error(argError.Error())
			cmd.Usage()
			os.Exit(1)
		}
		log.Fatalf(err.Error())
	}
}
