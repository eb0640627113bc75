package resendinfra

import "fmt"

// HTML bodies for the two transactional emails. Ported from the product's
// original templates: gradient header, centered code box, plain footer.

func verificationEmailHTML(code, userName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Verify Your Universe Account</title>
</head>
<body style="font-family:'Segoe UI',Tahoma,sans-serif;color:#333;max-width:600px;margin:0 auto;background-color:#f8fafc;">
  <div style="background:white;border-radius:12px;overflow:hidden;margin:20px;box-shadow:0 4px 6px rgba(0,0,0,0.1);">
    <div style="background:linear-gradient(135deg,#8B5CF6,#EC4899);color:white;padding:40px 30px;text-align:center;">
      <div style="font-size:32px;font-weight:bold;">Universe</div>
      <p style="margin:0;opacity:0.9;">Global Issue Resolution Platform</p>
    </div>
    <div style="padding:40px 30px;">
      <h2 style="color:#1e293b;">Hello %s!</h2>
      <p style="font-size:16px;color:#475569;">Welcome to Universe! To complete your account setup and start reporting issues, please verify your email address using the code below:</p>
      <div style="border:3px solid #8B5CF6;border-radius:16px;padding:30px;text-align:center;margin:30px 0;">
        <p style="margin:0;font-size:16px;color:#64748b;font-weight:600;">Your Verification Code:</p>
        <div style="font-size:36px;font-weight:bold;color:#8B5CF6;letter-spacing:12px;font-family:'Courier New',monospace;padding:15px;border:2px dashed #8B5CF6;border-radius:8px;">%s</div>
        <p style="margin:0;font-size:14px;color:#64748b;">Enter this code in the app to verify your account</p>
      </div>
    </div>
    <div style="text-align:center;padding:30px;border-top:1px solid #e2e8f0;color:#64748b;font-size:14px;background:#f8fafc;">
      <p style="margin:0;">&copy; Universe - Global Issue Resolution Platform</p>
    </div>
  </div>
</body>
</html>`, userName, code)
}

func welcomeEmailHTML(userName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Welcome to Universe!</title>
</head>
<body style="font-family:'Segoe UI',Tahoma,sans-serif;color:#333;max-width:600px;margin:0 auto;background-color:#f0fdf4;">
  <div style="background:white;border-radius:12px;overflow:hidden;margin:20px;box-shadow:0 4px 6px rgba(0,0,0,0.1);">
    <div style="background:linear-gradient(135deg,#10B981,#3B82F6);color:white;padding:40px 30px;text-align:center;">
      <div style="font-size:32px;font-weight:bold;">Welcome to Universe!</div>
      <p style="margin:0;opacity:0.9;">Your account is now active and ready to use</p>
    </div>
    <div style="padding:40px 30px;">
      <div style="border:3px solid #10B981;border-radius:16px;padding:30px;text-align:center;margin:30px 0;">
        <h2 style="color:#10B981;margin:0 0 10px 0;">Account Verified Successfully!</h2>
        <p style="margin:0;color:#059669;font-weight:500;">You're now part of the Universe community</p>
      </div>
      <h2 style="color:#1e293b;">Hello %s!</h2>
      <p style="font-size:16px;color:#475569;">Congratulations! Your Universe account has been verified and is ready to use. You're joining a global community of citizens making real change in their communities.</p>
    </div>
    <div style="text-align:center;padding:30px;border-top:1px solid #e2e8f0;color:#64748b;font-size:14px;background:#f0fdf4;">
      <p style="margin:0;">&copy; Universe - Global Issue Resolution Platform</p>
    </div>
  </div>
</body>
</html>`, userName)
}
