package statecode

// 业务状态码
// 0 成功；负数是通用错误；1xxxx 参数错误；2xxxx 链相关；3xxxx 计数器业务；4xxxx 用户
const (
	CommonSuccess      = 0
	CommonErrServerErr = -99
	TokenErr           = -98

	ParameterEmptyErr = 10001

	ChainIdEmpty = 20001
	ChainIdErr   = 20002

	CounterNotDeployed = 30001 // 配置里还没填合约地址（先跑 deploy）
	ChainRequestErr    = 30002 // 节点 RPC 调用失败
	AddressFormatErr   = 30003
	SignatureErr       = 30004
	TxHashFormatErr    = 30005
	TxNotFound         = 30006
	RawTxFormatErr     = 30007
	PageErr            = 30008

	NameOrPasswordErr = 40001
)

// MsgFlags 状态码对应的提示信息（返回给前端）
var MsgFlags = map[int]string{
	CommonSuccess:      "success",
	CommonErrServerErr: "system error",
	TokenErr:           "token error",
	ParameterEmptyErr:  "parameter is empty",
	ChainIdEmpty:       "chainId cannot be empty",
	ChainIdErr:         "chainId is error",
	CounterNotDeployed: "counter contract is not deployed",
	ChainRequestErr:    "chain request error",
	AddressFormatErr:   "address format error",
	SignatureErr:       "signature verify error",
	TxHashFormatErr:    "transaction hash format error",
	TxNotFound:         "transaction not found",
	RawTxFormatErr:     "raw transaction format error",
	PageErr:            "page or page size error",
	NameOrPasswordErr:  "name or password is error",
}

// GetMsg 根据状态码取提示信息，找不到就按服务器错误处理
func GetMsg(code int) string {
	msg, ok := MsgFlags[code]
	if ok {
		return msg
	}
	return MsgFlags[CommonErrServerErr]
}
