// Package docs registers the OpenAPI document served at /swagger.
// Maintained by hand as a path summary; regenerate with swag init for
// full definitions.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Log in"
            }
        },
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register"
            }
        },
        "/auth/refresh": {
            "post": {
                "tags": ["auth"],
                "summary": "Refresh tokens"
            }
        },
        "/auth/logout": {
            "post": {
                "tags": ["auth"],
                "summary": "Log out"
            }
        },
        "/auth/create-admin": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Create a superadmin"
            }
        },
        "/universities": {
            "get": {
                "tags": ["universities"],
                "summary": "List universities"
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["universities"],
                "summary": "Create a university"
            }
        },
        "/universities/{id}": {
            "get": {
                "tags": ["universities"],
                "summary": "Get a university"
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["universities"],
                "summary": "Update a university"
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["universities"],
                "summary": "Delete a university"
            }
        },
        "/directions": {
            "get": {
                "tags": ["directions"],
                "summary": "List directions"
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["directions"],
                "summary": "Create a direction"
            }
        },
        "/directions/{id}": {
            "get": {
                "tags": ["directions"],
                "summary": "Get a direction"
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["directions"],
                "summary": "Update a direction"
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["directions"],
                "summary": "Delete a direction"
            }
        },
        "/kafedras": {
            "get": {
                "tags": ["kafedras"],
                "summary": "List kafedras"
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["kafedras"],
                "summary": "Create a kafedra"
            }
        },
        "/kafedras/{id}": {
            "get": {
                "tags": ["kafedras"],
                "summary": "Get a kafedra"
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["kafedras"],
                "summary": "Update a kafedra"
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["kafedras"],
                "summary": "Delete a kafedra"
            }
        },
        "/subjects": {
            "get": {
                "tags": ["subjects"],
                "summary": "List subjects"
            }
        },
        "/subjects/bulk": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["subjects"],
                "summary": "Bulk create subjects"
            }
        },
        "/subjects/{id}": {
            "get": {
                "tags": ["subjects"],
                "summary": "Get a subject"
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["subjects"],
                "summary": "Update a subject"
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["subjects"],
                "summary": "Delete a subject"
            }
        },
        "/literatures": {
            "get": {
                "tags": ["literatures"],
                "summary": "List literature"
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["literatures"],
                "summary": "Create literature"
            }
        },
        "/literatures/{id}": {
            "get": {
                "tags": ["literatures"],
                "summary": "Get literature"
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["literatures"],
                "summary": "Update literature"
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["literatures"],
                "summary": "Delete literature"
            }
        },
        "/literatures/upload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["literatures"],
                "summary": "Create literature"
            }
        },
        "/literatures/upload/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["literatures"],
                "summary": "Update literature"
            }
        },
        "/literatures/{id}/download": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["literatures"],
                "summary": "Download literature file"
            }
        },
        "/news": {
            "get": {
                "tags": ["news"],
                "summary": "List news"
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["news"],
                "summary": "Create news"
            }
        },
        "/news/{id}": {
            "get": {
                "tags": ["news"],
                "summary": "Get news"
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["news"],
                "summary": "Update news"
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["news"],
                "summary": "Delete news"
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "List users"
            }
        },
        "/users/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Get own profile"
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Update own profile"
            }
        },
        "/users/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Update a user"
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Delete a user"
            }
        },
        "/users/{id}/block": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Block a user"
            }
        },
        "/admins": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admins"],
                "summary": "List admins"
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["admins"],
                "summary": "Create an admin"
            }
        },
        "/admins/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["admins"],
                "summary": "Get an admin"
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["admins"],
                "summary": "Update an admin"
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["admins"],
                "summary": "Delete an admin"
            }
        },
        "/stats/general": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "General statistics"
            }
        },
        "/stats/owner-universities": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Per-university statistics"
            }
        },
        "/statistics/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["stats"],
                "summary": "Export catalog report"
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Health check"
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "JWT token for authorization",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "UniLib API",
	Description:      "Administration backend for university library catalogs",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
