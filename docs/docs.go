// Package docs registers the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/members/search": {
            "get": {
                "tags": ["Member"],
                "summary": "条件搜索会员（谓词函数组合）",
                "parameters": [
                    {"type": "string", "name": "username", "in": "query"},
                    {"type": "string", "name": "team_name", "in": "query"},
                    {"type": "integer", "name": "age_goe", "in": "query"},
                    {"type": "integer", "name": "age_loe", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/members/search/builder": {
            "get": {
                "tags": ["Member"],
                "summary": "条件搜索会员（条件累加构建）",
                "parameters": [
                    {"type": "string", "name": "username", "in": "query"},
                    {"type": "string", "name": "team_name", "in": "query"},
                    {"type": "integer", "name": "age_goe", "in": "query"},
                    {"type": "integer", "name": "age_loe", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/members/page": {
            "get": {
                "tags": ["Member"],
                "summary": "分页搜索会员",
                "parameters": [
                    {"type": "string", "name": "username", "in": "query"},
                    {"type": "string", "name": "team_name", "in": "query"},
                    {"type": "integer", "name": "age_goe", "in": "query"},
                    {"type": "integer", "name": "age_loe", "in": "query"},
                    {"type": "integer", "name": "offset", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "sort", "in": "query"},
                    {"enum": ["simple", "complex", "count"], "type": "string", "name": "mode", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.PageResponse"}}}
            }
        },
        "/api/v1/members/sorted": {
            "get": {
                "tags": ["Member"],
                "summary": "排序查询全部会员",
                "parameters": [
                    {"type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "name": "sort", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/member": {
            "get": {
                "tags": ["Member"],
                "summary": "获取会员详情",
                "parameters": [{"type": "integer", "name": "id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            },
            "post": {
                "tags": ["Member"],
                "summary": "创建会员",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateMemberRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            },
            "put": {
                "tags": ["Member"],
                "summary": "更新会员",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateMemberRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/member/{id}": {
            "delete": {
                "tags": ["Member"],
                "summary": "删除会员",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/members/bulk/username": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Member"],
                "summary": "批量重置年龄小于指定值的会员用户名",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BulkUpdateUsernameRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/members/bulk/age": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Member"],
                "summary": "全部会员年龄增加 delta",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BulkIncrementAgeRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/members/bulk/delete": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Member"],
                "summary": "删除年龄大于指定值的会员",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BulkDeleteRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/team": {
            "get": {
                "tags": ["Team"],
                "summary": "获取团队详情（含成员）",
                "parameters": [{"type": "integer", "name": "id", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            },
            "post": {
                "tags": ["Team"],
                "summary": "创建团队",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateTeamRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            },
            "put": {
                "tags": ["Team"],
                "summary": "更新团队",
                "parameters": [{"name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateTeamRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/team/{id}": {
            "delete": {
                "tags": ["Team"],
                "summary": "删除团队（成员保留，移出团队）",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        },
        "/api/v1/teams": {
            "get": {
                "tags": ["Team"],
                "summary": "获取团队列表（按名称排序）",
                "parameters": [{"type": "boolean", "name": "with_members", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/utils.Response"}}}
            }
        }
    },
    "definitions": {
        "dto.CreateMemberRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "age": {"type": "integer"},
                "team_id": {"type": "integer"}
            }
        },
        "dto.UpdateMemberRequest": {
            "type": "object",
            "required": ["id"],
            "properties": {
                "id": {"type": "integer"},
                "username": {"type": "string"},
                "age": {"type": "integer"},
                "team_id": {"type": "integer"},
                "clear_team": {"type": "boolean"}
            }
        },
        "dto.BulkUpdateUsernameRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {
                "username": {"type": "string"},
                "age_less_than": {"type": "integer"}
            }
        },
        "dto.BulkIncrementAgeRequest": {
            "type": "object",
            "required": ["delta"],
            "properties": {"delta": {"type": "integer"}}
        },
        "dto.BulkDeleteRequest": {
            "type": "object",
            "properties": {"age_greater_than": {"type": "integer"}}
        },
        "dto.CreateTeamRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}}
        },
        "dto.UpdateTeamRequest": {
            "type": "object",
            "required": ["id", "name"],
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "utils.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "detail": {"type": "string"},
                "data": {}
            }
        },
        "utils.PageResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "total": {"type": "integer"},
                "offset": {"type": "integer"},
                "limit": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Member Query API",
	Description:      "会员与团队动态查询服务",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
