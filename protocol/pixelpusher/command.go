// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package pixelpusher

import (
	"io"

	"github.com/lunixbochs/struc"
	"github.com/pkg/errors"
)

// CommandMagic precedes every PixelPusher command.
var CommandMagic = []byte{
	0x40, 0x09, 0x2d, 0xa6, 0x15, 0xa5, 0xdd, 0xe5,
	0x6a, 0x9d, 0x4d, 0x5a, 0xcf, 0x09, 0xaf, 0x50,
}

// CommandID identifies a command.
type CommandID uint8

// Command identifiers understood by the controller.
const (
	CommandReset               CommandID = 0x01
	CommandGlobalBrightnessSet CommandID = 0x02
	CommandStripBrightnessSet  CommandID = 0x05
)

// FullBrightness is the brightness parameter for unattenuated output.
const FullBrightness = 0xFFFF

// Command is a controller command.
type Command interface {
	// ID is the command ID for this command.
	ID() CommandID

	// WriteContentTo writes the command's content, excluding the CommandMagic
	// and the command byte.
	WriteContentTo(w io.Writer) error
}

// ResetCommand reboots the controller.
type ResetCommand struct{}

// ID implements Command.
func (*ResetCommand) ID() CommandID { return CommandReset }

// WriteContentTo implements Command.
func (*ResetCommand) WriteContentTo(io.Writer) error { return nil }

// GlobalBrightnessSetCommand sets the hardware brightness of every strip.
type GlobalBrightnessSetCommand struct {
	Parameter uint16 `struc:",little"`
}

// ID implements Command.
func (*GlobalBrightnessSetCommand) ID() CommandID { return CommandGlobalBrightnessSet }

// WriteContentTo implements Command.
func (cmd *GlobalBrightnessSetCommand) WriteContentTo(w io.Writer) error { return struc.Pack(w, cmd) }

// StripBrightnessSetCommand sets the hardware brightness of a single strip.
type StripBrightnessSetCommand struct {
	Strip     uint8
	Parameter uint16 `struc:",little"`
}

// ID implements Command.
func (*StripBrightnessSetCommand) ID() CommandID { return CommandStripBrightnessSet }

// WriteContentTo implements Command.
func (cmd *StripBrightnessSetCommand) WriteContentTo(w io.Writer) error { return struc.Pack(w, cmd) }

// WriteCommand writes CommandMagic, cmd's ID byte and cmd's content to w.
func WriteCommand(cmd Command, w io.Writer) error {
	if _, err := w.Write(CommandMagic); err != nil {
		return errors.Wrap(err, "failed to write command magic header")
	}
	if _, err := w.Write([]byte{byte(cmd.ID())}); err != nil {
		return errors.Wrap(err, "failed to write command byte")
	}
	if err := cmd.WriteContentTo(w); err != nil {
		return errors.Wrapf(err, "failed to write content of command 0x%02x", byte(cmd.ID()))
	}
	return nil
}
