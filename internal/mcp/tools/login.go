package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/cargodham/cargodham-mcp/internal/shiprocket"
)

type LoginService interface {
	Login(ctx context.Context, creds shiprocket.Credentials) (shiprocket.LoginResult, error)
}

type LoginHandler struct{ Service LoginService }

func (h *LoginHandler) ToolAdapter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	creds := shiprocket.Credentials{
		Email:    stringArg(args, "email"),
		Password: stringArg(args, "password"),
	}
	result, err := h.Service.Login(ctx, creds)
	if err != nil {
		return mcp.NewToolResultError("Login failed: " + err.Error()), nil
	}
	text := fmt.Sprintf("Login successful!\n\nToken: %s\nUser: %s %s\nEmail: %s\nCompany: %s",
		result.Token, result.FirstName, result.LastName, result.Email, result.CompanyName)
	return mcp.NewToolResultText(text), nil
}
