package cmd

import (
	"bufio"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/EP-Guy/grpf"
)

// confirmIfExists checks that a file exists, and asks the user for
// confirmation before overwriting it. It returns true if the file
// doesn't exist yet, or if the user answered yes.
func confirmIfExists(path, msg string) (ok bool, err error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		return false, err
	}
	return askForConfirmation(msg), nil
}

// askForConfirmation shows msg and asks the user to type y or n;
// typing ENTER defaults to no.
func askForConfirmation(msg string) bool {
	fmt.Println(msg)
	reader := bufio.NewReader(os.Stdin)
	defaultInput := byte('N')

	for {
		input, _ := reader.ReadString('\n')
		if len(input) == 0 {
			return false
		}
		c := input[0]
		if c == '\n' {
			c = defaultInput
		}
		switch c {
		case 'Y', 'y':
			return true
		case 'N', 'n':
			return false
		}
	}
}

func check(err error) {
	if err != nil {
		fmt.Printf("error, %v\n", err)
		os.Exit(-1)
	}
}

func unmarshalYAMLFile(path string, out interface{}) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, out)
}

func marshalYAMLFile(path string, in interface{}) error {
	buf, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

func loadParams(path string) grpf.Params {
	p := grpf.NewParams()
	if path == "" {
		return p
	}
	check(unmarshalYAMLFile(path, &p))
	return p
}

func grpfRun(preset Preset, p grpf.Params) ([]complex128, []complex128, grpf.Status) {
	return grpf.Grpf(preset.Func, preset.InitialMesh(), p)
}
