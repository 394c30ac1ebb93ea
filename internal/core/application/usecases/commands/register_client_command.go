package commands

import (
	"errors"

	"caisse/internal/core/domain/model/kernel"
	"caisse/internal/pkg/guard"
)

var (
	ErrRegisterClientCommandIsNotConstructed = errors.New(
		"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
	)
	ErrClientNameIsRequired = errors.New("client name is required")
)

// RegisterClientCommand represents a request to append a client to the
// roster. Phone, email and the table reference are optional.
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	clientID    kernel.UUID
	name        string
	phone       *string
	email       *string
	tableNumber *kernel.TableNumber

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand creates a command to register a new client.
// Validates that the client id is valid and the name is not empty.
func NewRegisterClientCommand(
	clientID kernel.UUID,
	name string,
	phone *string,
	email *string,
	tableNumber *kernel.TableNumber,
) (RegisterClientCommand, error) {
	clientCommand := RegisterClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientCommand.setClientID(clientID),
		clientCommand.setName(name),
		clientCommand.setTableNumber(tableNumber),
	); err != nil {
		return RegisterClientCommand{}, err
	}

	clientCommand.phone = copyOptionalString(phone)
	clientCommand.email = copyOptionalString(email)

	return clientCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// ClientID returns the unique identifier for the new client.
func (c RegisterClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Name returns the client's name.
func (c RegisterClientCommand) Name() string {
	return c.name
}

// Phone returns the optional phone number.
func (c RegisterClientCommand) Phone() *string {
	return copyOptionalString(c.phone)
}

// Email returns the optional email address.
func (c RegisterClientCommand) Email() *string {
	return copyOptionalString(c.email)
}

// TableNumber returns the optional table the client is registered at.
func (c RegisterClientCommand) TableNumber() *kernel.TableNumber {
	if c.tableNumber == nil {
		return nil
	}
	n := *c.tableNumber
	return &n
}

func (c *RegisterClientCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *RegisterClientCommand) setName(name string) error {
	if name == "" {
		return ErrClientNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterClientCommand) setTableNumber(tableNumber *kernel.TableNumber) error {
	if tableNumber == nil {
		return nil
	}

	if err := tableNumber.Validate(); err != nil {
		return err
	}

	n := *tableNumber
	c.tableNumber = &n
	return nil
}

func copyOptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
