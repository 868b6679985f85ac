package constants

// JWT 相关
const (
	JWTContextKey = "jwt_user"
	JWTTypeAccess = "access"
)

// HTTP Header
const (
	HeaderAuthorization = "Authorization"
	HeaderBearerPrefix  = "Bearer "
)

// 排序方向
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// 空值排序
const (
	NullsNative = ""
	NullsFirst  = "nulls_first"
	NullsLast   = "nulls_last"
)

// 分页查询模式
const (
	PageModeSimple  = "simple"  // 单次查询，窗口函数带回总数
	PageModeComplex = "complex" // 内容与总数分开查询
	PageModeCount   = "count"   // 分开查询，首页不足一页时跳过总数查询
)
