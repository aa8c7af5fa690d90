package apierrors

const (
	MsgInvalidPayload     = "invalidPayload"
	MsgUnauthorized       = "unauthorized"
	MsgSessionInvalid     = "sessionInvalid"
	MsgForbidden          = "forbidden"
	MsgEmailTaken         = "emailTaken"
	MsgInvalidCredentials = "invalidCredentials"
	MsgEmployeeNotFound   = "employeeNotFound"
	MsgFailSignup         = "failSignup"
	MsgFailListEmployees  = "failListEmployees"
	MsgFailUpdateEmployee = "failUpdateEmployee"
	MsgFailResetPassword  = "failResetPassword"

	MsgProjectNotFound      = "projectNotFound"
	MsgFailCreateProject    = "failCreateProject"
	MsgFailListProjects     = "failListProjects"
	MsgFailAssignTeamLead   = "failAssignTeamLead"
	MsgFailAssignDevelopers = "failAssignDevelopers"
	MsgFailRemoveDeveloper  = "failRemoveDeveloper"

	MsgTaskNotFound        = "taskNotFound"
	MsgFailAssignTask      = "failAssignTask"
	MsgFailListTasks       = "failListTasks"
	MsgFailSubmitTask      = "failSubmitTask"
	MsgFailReviewTask      = "failReviewTask"
	MsgFailListSubmissions = "failListSubmissions"
	MsgCommentRequired     = "commentRequired"
	MsgFeedbackRequired    = "feedbackRequired"
	MsgInvalidTransition   = "invalidTransition"
	MsgNoSubmissionFile    = "noSubmissionFile"
	MsgFailDownload        = "failDownload"

	MsgRequestNotFound    = "requestNotFound"
	MsgRequestResolved    = "requestResolved"
	MsgFailSubmitRequest  = "failSubmitRequest"
	MsgFailListRequests   = "failListRequests"
	MsgFailResolveRequest = "failResolveRequest"
)
