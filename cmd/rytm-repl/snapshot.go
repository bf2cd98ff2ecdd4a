package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rytmctl/rytm"
	"github.com/rytmctl/rytm/command"
	"github.com/rytmctl/rytm/external"
	"gopkg.in/yaml.v3"
)

// save writes the whole project of o to path as yaml.
func save(o *external.Object, path string) error {
	var (
		b   []byte
		err error
	)
	o.Project(func(p *rytm.Project) {
		b, err = yaml.Marshal(p)
	})
	if err != nil {
		return errors.Wrap(err, "yaml.Marshal failed")
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return errors.Wrap(err, "writing snapshot failed")
	}
	return nil
}

// load replaces the project of o with the snapshot in path. Objects the
// snapshot leaves out are reset to their defaults. A snapshot with any
// invalid value is refused and the project is left unchanged.
func load(o *external.Object, path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading snapshot failed")
	}
	loaded := rytm.NewProject()
	if err := yaml.Unmarshal(b, loaded); err != nil {
		return errors.Wrap(err, "yaml.Unmarshal failed")
	}
	if err := command.ValidateProject(loaded); err != nil {
		return errors.Wrap(err, "invalid snapshot")
	}
	loaded.Relink()
	o.Project(func(p *rytm.Project) {
		*p = *loaded
	})
	return nil
}
