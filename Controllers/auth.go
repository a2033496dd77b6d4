package Controllers

import (
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"Gudang/Models"
	"Gudang/middleware"
)

// LoginPage renders the login form.
func LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Error": c.Query("error"),
	})
}

// Login checks the credentials and sets the jwt cookie.
func Login(c *fiber.Ctx) error {
	name := c.FormValue("name")
	password := c.FormValue("password")

	var user Models.User
	if err := Models.DB.Where("name = ?", name).First(&user).Error; err != nil {
		return c.Redirect("/login?error=" + url.QueryEscape("Invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return c.Redirect("/login?error=" + url.QueryEscape("Invalid credentials"))
	}

	claims := jwt.RegisteredClaims{
		Issuer:    strconv.Itoa(int(user.ID)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(middleware.SecretKey())
	if err != nil {
		log.Println(err)
		return c.Redirect("/login?error=" + url.QueryEscape("Could not log in"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/inventory")
}

// Logout clears the jwt cookie.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "jwt",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
	return c.Redirect("/login")
}
