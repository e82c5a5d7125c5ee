package stubserver

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/bugabuga/appecommerce/internal/domain/entity"
)

type registerBody struct {
	Email    string   `json:"email" validate:"required,email"`
	Nombre   string   `json:"nombre" validate:"required"`
	Apellido string   `json:"apellido" validate:"required"`
	Password string   `json:"password" validate:"required,min=4"`
	Roles    []string `json:"roles"`
}

func (s *Server) handleRegister(c *fiber.Ctx) error {
	var in registerBody
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := s.validate.Struct(in); err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "email, nombre, apellido y password son requeridos")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	if _, exists := s.state.byEmail[email]; exists {
		return fail(c, fiber.StatusConflict, "DUPLICATE", "el email ya está registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}

	roles := in.Roles
	if len(roles) == 0 {
		roles = []string{entity.RolCliente}
	}
	user := entity.User{
		ID:       s.state.id(),
		Email:    email,
		Nombre:   in.Nombre,
		Apellido: in.Apellido,
		Roles:    roles,
	}
	s.state.users[user.ID] = &userRecord{user: user, hash: hash}
	s.state.byEmail[email] = user.ID

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var in entity.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "email y password son requeridos")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	id, ok := s.state.byEmail[strings.ToLower(strings.TrimSpace(in.Email))]
	if !ok {
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	}
	rec := s.state.users[id]
	if bcrypt.CompareHashAndPassword(rec.hash, []byte(in.Password)) != nil {
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	}

	return c.JSON(entity.LoginResponse{
		Usuario: rec.user,
		Mensaje: "Inicio de sesión exitoso",
	})
}

func (s *Server) handleGetProfile(c *fiber.Ctx) error {
	userID := c.QueryInt("usuarioId")
	if userID == 0 {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "usuarioId es requerido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec, ok := s.state.users[userID]
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "usuario no encontrado")
	}
	return c.JSON(rec.user)
}

func (s *Server) handleUpdateProfile(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "VALIDATION", "id inválido")
	}

	var in entity.User
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec, ok := s.state.users[userID]
	if !ok {
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", "usuario no encontrado")
	}

	if in.Nombre != "" {
		rec.user.Nombre = in.Nombre
	}
	if in.Apellido != "" {
		rec.user.Apellido = in.Apellido
	}
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if other, exists := s.state.byEmail[email]; exists && other != userID {
			return fail(c, fiber.StatusConflict, "DUPLICATE", "el email ya está registrado")
		}
		delete(s.state.byEmail, rec.user.Email)
		rec.user.Email = email
		s.state.byEmail[email] = userID
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return fail(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
		}
		rec.hash = hash
	}

	return c.JSON(rec.user)
}
