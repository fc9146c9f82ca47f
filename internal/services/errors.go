package services

import "errors"

// 业务错误。handler按错误映射HTTP状态码，所有错误同步返回给调用方，不做重试。
var (
	// ErrEmailExists 邮箱已被注册
	ErrEmailExists = errors.New("邮箱已被注册")

	// ErrInvalidCredentials 邮箱或密码不正确
	ErrInvalidCredentials = errors.New("邮箱或密码不正确")

	// ErrAccountDisabled 账户未激活
	ErrAccountDisabled = errors.New("账户未激活")

	// ErrVendorNotPending 只有待审核的商家可以批准或拒绝
	ErrVendorNotPending = errors.New("只有待审核的商家可以执行该操作")

	// ErrReasonRequired 拒绝与封禁必须填写原因
	ErrReasonRequired = errors.New("必须填写原因")

	// ErrVendorNotApproved 商家尚未通过审核
	ErrVendorNotApproved = errors.New("商家尚未通过审核")

	// ErrVendorBlocked 商家已被封禁
	ErrVendorBlocked = errors.New("商家已被封禁")

	// ErrCartEmpty 购物车为空
	ErrCartEmpty = errors.New("购物车为空")

	// ErrPaymentModeRequired 必须指定支付方式
	ErrPaymentModeRequired = errors.New("必须指定支付方式")

	// ErrQuantityInvalid 数量必须大于0
	ErrQuantityInvalid = errors.New("数量必须大于0")
)

// EventPublisher 事件发布接口，由Kafka生产者实现。为nil时跳过发布。
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

// ApprovalNotifier 审核结果通知接口，由SMTP邮件实现。为nil时跳过通知。
type ApprovalNotifier interface {
	SendApprovalResult(to, shopName, action, reason string) error
}
